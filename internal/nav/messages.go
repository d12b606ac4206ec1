package nav

import "github.com/jask/hypertabs/internal/markup"

// DocumentLoadedMsg carries the result of fetching a screen's document.
type DocumentLoadedMsg struct {
	RouteKey string
	Doc      *markup.Node
	Err      error
}
