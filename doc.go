// Package simplejson is a JSON document model built on a linked tree of
// nodes.
//
// A [Document] is parsed from text, queried with [Document.Get] and
// [Document.At], changed through a [Cursor] and written back with
// [Document.Serialize]:
//
//	doc, err := simplejson.Parse(`{"person": {"name": "charlie", "age": 27}}`)
//	if err != nil {
//		return err
//	}
//	person, err := doc.Get("person")
//	if err != nil {
//		return err
//	}
//	if err := person.Key("skills").Index(0).SetString("coding"); err != nil {
//		return err
//	}
//	fmt.Println(person.Serialize())
//
// Documents returned by Get and At are copies. Changing one never changes
// the document it came from.
//
// # Related Packages
//
//   - github.com/signadot/simplejson/ir - the node tree
//   - github.com/signadot/simplejson/parse - text to tree
//   - github.com/signadot/simplejson/encode - tree to text
package simplejson
