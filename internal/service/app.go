package service

type App struct {
	Board *BoardService
	Stats *StatsService
}

func NewApp(board *BoardService, stats *StatsService) *App {
	return &App{
		Board: board,
		Stats: stats,
	}
}
