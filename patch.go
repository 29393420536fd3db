package simplejson

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to a copy of d. The result is
// parsed again from the patched text, so members of objects may come back
// in a different order.
func (d *Document) ApplyPatch(patch []byte) (*Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	in, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(in)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	return ParseBytes(out)
}

// MergePatch applies an RFC 7386 merge patch to a copy of d. As with
// ApplyPatch, member order is not preserved.
func (d *Document) MergePatch(patch []byte) (*Document, error) {
	in, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(in, patch)
	if err != nil {
		return nil, fmt.Errorf("error applying merge patch: %w", err)
	}
	return ParseBytes(out)
}
