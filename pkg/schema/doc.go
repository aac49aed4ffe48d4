// Package schema builds format definitions from configuration instead of
// code.
//
// A definition is an ordered list of fields, each naming a codec and its
// parameters. Definitions come from YAML files holding named formats:
//
//	formats:
//	  event:
//	    - type: uint
//	      bits: 16
//	      order: big
//	    - type: fixed_string
//	      length: 2
//	      padding: space
//	    - type: uvarint
//	    - type: varchar
//
// or from compact field-spec strings suited to command lines:
//
//	u16be s2:space cu v
//
// Both produce the same Field list, which Build turns into a
// format.Format. The layout is fixed once built, before any value is
// presented, just as with formats assembled directly from codecs.
//
// The package also converts loosely typed values (JSON numbers, command
// line strings) into the Go types a definition's slots expect, so drivers
// do not hand-roll per-field conversions.
package schema
