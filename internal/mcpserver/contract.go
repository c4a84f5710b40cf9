package mcpserver

// JournalFormatContract describes the plain-text journal format that
// LLM consumers should follow when writing journal content.
const JournalFormatContract = `# Dagaz Journal Format Contract

Every journal stored in Dagaz is a plain UTF-8 text file (.txt) made of
day blocks, newest day first.

## Structure

` + "```" + `
2025-12-19
========================================
[EVENTS]
- 02:30 PM - Team Standup
  - Prepare agenda
- All Day - Conference

[DOING]
- Draft release notes
x Ship hotfix

[DONE]
x Review PR #42

[NOTES]
Free-form text lines.
` + "```" + `

## Rules

1. **Day header** is a line starting with an ISO date (YYYY-MM-DD). An
   optional separator line of ` + "`" + `=` + "`" + ` characters may follow it.
2. **Section headers** are bracketed labels like ` + "`" + `[EVENTS]` + "`" + `. The canonical
   sections are EVENTS, DOING, DONE, and NOTES; extra labels are allowed and
   preserved verbatim.
3. **Items** are one line each. A leading ` + "`" + `x ` + "`" + ` marks an item completed.
4. **Event items** carry an optional time prefix: ` + "`" + `- 02:30 PM - Name` + "`" + ` or
   ` + "`" + `- All Day - Name` + "`" + `. Lines indented below an event (two or more spaces,
   or a tab) are its child tasks.
5. **Tags** are trailing ` + "`" + `#words` + "`" + ` at the end of an item line.
6. **Blank lines** separate sections. Never emit two consecutive blank lines.
7. A day block ends at the next day header or end of file.

## Example workflow

- Call ` + "`" + `seed_day` + "`" + ` each morning to create today's block with calendar
  events and carried-over unfinished tasks.
- Use ` + "`" + `toggle_task` + "`" + ` with the exact raw line to mark items done.
- Use ` + "`" + `update_section` + "`" + ` to replace a whole section's items for a date.
`
