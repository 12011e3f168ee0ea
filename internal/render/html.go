package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/forsitet/kanban-board/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("board.html").
		Funcs(template.FuncMap{
			"avatar":     AvatarURL,
			"joinTags":   func(tags []string) string { return strings.Join(tags, ", ") },
			"columnIcon": columnIcon,
		}).
		ParseFS(templateFS, "templates/board.html"),
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Error     string
	Board     *domain.Board
	Groupings []option
	Orderings []option
}

func groupingOptions(current domain.Grouping) []option {
	return []option{
		{Value: string(domain.GroupByStatus), Label: "Status", Selected: current == domain.GroupByStatus},
		{Value: string(domain.GroupByUser), Label: "User", Selected: current == domain.GroupByUser},
		{Value: string(domain.GroupByPriority), Label: "Priority", Selected: current == domain.GroupByPriority},
	}
}

func orderingOptions(current domain.Ordering) []option {
	return []option{
		{Value: string(domain.OrderByPriority), Label: "Priority", Selected: current == domain.OrderByPriority},
		{Value: string(domain.OrderByTitle), Label: "Title", Selected: current == domain.OrderByTitle},
	}
}

// HTML writes the full board page.
func HTML(w io.Writer, board *domain.Board) error {
	data := pageData{
		Board:     board,
		Groupings: groupingOptions(board.Grouping),
		Orderings: orderingOptions(board.Ordering),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute board template: %w", err)
	}
	return nil
}

// HTMLError writes a page holding only the message. No board is rendered.
func HTMLError(w io.Writer, message string) error {
	if err := pageTemplate.Execute(w, pageData{Error: message}); err != nil {
		return fmt.Errorf("execute error template: %w", err)
	}
	return nil
}
