// Package token provides the lexical layer of the JSON parser.
//
// [Strip] removes insignificant whitespace and [Next] finds the leftmost
// structural delimiter in the remaining text. Both can track string
// literals so that whitespace and delimiters inside strings survive.
// [PosDoc] maps offsets in the stripped text back to lines and columns of
// the input.
package token
