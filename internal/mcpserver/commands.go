package mcpserver

// CommandReference describes the command language accepted by the
// run_command tool.
const CommandReference = `# Orion Command Reference

Every command is a single line. The first word is the command and is
case-sensitive (lower case only).

## Commands

` + "```" + `
list
find <keyword>
todo <description>
deadline <description> /by <date> [<time>]
event <description> /from <date> [<time>] /to <date> [<time>]
mark <taskNumber>
unmark <taskNumber>
delete <taskNumber>
bye
` + "```" + `

## Rules

1. **Dates** are ` + "`" + `yyyy-MM-dd` + "`" + ` (e.g. ` + "`" + `2019-10-15` + "`" + `).
2. **Times** are optional and written ` + "`" + `HHmm` + "`" + ` or ` + "`" + `HH:mm` + "`" + ` (e.g. ` + "`" + `1800` + "`" + `, ` + "`" + `18:00` + "`" + `).
   A ` + "`" + `T` + "`" + ` may join date and time: ` + "`" + `2019-10-15T18:00` + "`" + `.
3. **Separators** ` + "`" + `/by` + "`" + `, ` + "`" + `/from` + "`" + ` and ` + "`" + `/to` + "`" + ` must have spaces on both sides.
4. **Task numbers** are 1-based positions from ` + "`" + `list` + "`" + ` (or the ` + "`" + `number` + "`" + `
   field of ` + "`" + `list_tasks` + "`" + ` / ` + "`" + `find_tasks` + "`" + `).
5. **Descriptions** are a single line and may not contain ` + "`" + `|` + "`" + `.
6. Adding a task that matches an existing one (same type, same description
   ignoring case and extra spaces, same dates and times) is refused.

## Example

` + "```" + `
todo read book
deadline return book /by 2019-10-15 1800
event project fair /from 2019-10-16 /to 2019-10-17 14:00
mark 2
find book
` + "```" + `
`
