package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/simplejson/encode"
	"github.com/signadot/simplejson/format"
	"github.com/signadot/simplejson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='no spaces after separators'"`
	Indent  bool `cli:"name=indent desc='one member per line'"`
	Strict  bool `cli:"name=strict desc='strip whitespace inside strings too'"`
	Depth   int  `cli:"name=depth desc='maximum nesting depth, 0 for none'"`
	Y       bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.StripAll())
	}
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	if f, ok := format.FromPath(cfg.Out); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Indent {
		res = append(res, encode.EncodeIndent("  "))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honors -color when it was given and otherwise colors output
// to terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='value is a string'"`
	Bool   bool `cli:"name=b desc='value is a bool'"`
	Float  bool `cli:"name=f desc='value is a number'"`
	Null   bool `cli:"name=null desc='set null, no value argument'"`
	Delete bool `cli:"name=d desc='delete the value, no value argument'"`

	Set *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only log failures'"`
	Jobs  int  `cli:"name=j desc='files checked at once, 0 for one per cpu'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='patch is a merge patch (RFC 7386)'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	Expr   bool `cli:"name=e desc='match is an expression'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}
