package arg

import "strings"

// HandleContent joins the positional arguments into note content. Words
// passed unquoted are separated by single spaces.
func HandleContent(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// HandleContentAfter is HandleContent for commands whose first n arguments
// are not content.
func HandleContentAfter(args []string, n int) string {
	if len(args) <= n {
		return ""
	}
	return HandleContent(args[n:])
}
