// Package format names the text formats a document can be written in.
package format
