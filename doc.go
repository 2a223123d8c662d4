// Package investwise assembles a user's financial goals and linked
// brokerage accounts into an ordered report document.
//
// The package owns the data model (Goal, LinkedAccount, ReportDocument)
// and the read-only stores backing it. Rendering a document to a display
// string or to a markdown file is the job of the renderer subpackage, and
// the iw command line tool in cmd wires both together.
//
// Stores degrade rather than fail: a missing or unreadable storage file
// reads as an empty record set, and malformed rows are skipped. The only
// hard error the pipeline surfaces is a renderer.GenerationError raised
// while writing the exported report file.
package investwise
