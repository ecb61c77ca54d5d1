package tool

import (
	"fmt"
	"strings"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory/query"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memsearch"
)

// formatSearchReport renders the search report as text. Every summary
// field and every returned result appears, in engine order; the collection
// totals follow the fixed scan order of the query's scope.
func formatSearchReport(q *query.Query, report memsearch.Report) string {
	var b strings.Builder

	if report.Found == 0 {
		fmt.Fprintf(&b, "🔍 No memories matched %q.\n\n", q.Term())
	} else {
		fmt.Fprintf(&b, "🔍 Memory search results for %q\n\n", q.Term())
		fmt.Fprintf(&b, "Found %d match(es), showing %d.\n\n", report.Found, report.Returned)
		for i, res := range report.Results {
			fmt.Fprintf(&b, "%d. 📁 [%s] %s\n   %s\n   %s\n\n",
				i+1, res.Source(), res.Name(), res.Preview(), res.Path())
		}
	}

	parts := make([]string, 0, 2)
	for _, c := range q.Scope().Collections() {
		parts = append(parts, fmt.Sprintf("%s %d record(s)", c, report.Totals[c]))
	}
	fmt.Fprintf(&b, "Scanned: %s.\n", strings.Join(parts, ", "))

	if report.Found == 0 {
		b.WriteString("\n💡 Tip: try a broader term, or save new insights with save_memory.")
	} else if report.Found > report.Returned {
		b.WriteString("\n💡 Tip: narrow the scope with category \"business\" or \"legacy\".")
	}

	return b.String()
}
