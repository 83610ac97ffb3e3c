package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// minBusinessYear matches the earliest year the dividend API answers for.
const minBusinessYear = 2000

// Dashboard renders the single-page dashboard. The page's JavaScript calls
// the JSON API; only the selector contents are templated in.
func Dashboard(c *gin.Context) {
	current := time.Now().Year()
	years := make([]int, 0, current-minBusinessYear+1)
	for y := current; y >= minBusinessYear; y-- {
		years = append(years, y)
	}

	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Years":       years,
		"DefaultYear": current - 1,
		"Periods":     []string{"1mo", "3mo", "6mo", "1y", "2y"},
	})
}
