// Package todo holds the ordered task list and its markdown file format.
//
// The tasks file is a plain-text markdown checklist, one task per line:
//
//	- [ ] buy milk
//	- [~] write report
//	- [x] call plumber
//	- [!] pay rent
//
// # Task Status Values
//
//   - "todo": not started, marker ' '
//   - "doing": in progress, marker '~'
//   - "done": complete, marker 'x' ('X' accepted when reading)
//   - "important": needs attention, marker '!'
//
// # Reading
//
// The parser is lenient: the leading "-" bullet is optional, whitespace
// around the bullet, the brackets, and the text is ignored, and blank
// lines are skipped. Any other line is reported to the caller as
// skipped and does not abort the load. A missing file loads as an
// empty list.
//
// # Writing
//
// Files are written in canonical form ("- [x] text", trailing newline)
// via a temporary file renamed into place, so a crash mid-write leaves
// the previous contents intact. Lines skipped during reading are not
// preserved and are dropped on the next save.
package todo
