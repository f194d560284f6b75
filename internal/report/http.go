package report

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gally74/gaa-match-scheduler/internal/matches"
)

// Source is what the report routes read matches from.
type Source interface {
	List() []matches.Match
}

func RegisterRoutes(r *gin.Engine, src Source) {
	api := r.Group("/api")

	build := func(c *gin.Context) (Report, bool) {
		year := time.Now().Year()
		if y := c.Query("year"); y != "" {
			v, err := strconv.Atoi(y)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
				return Report{}, false
			}
			year = v
		}
		rep, err := YearReport(src.List(), year, categoriesFrom(c))
		if err != nil {
			c.JSON(matches.ErrorStatus(err), gin.H{"error": err.Error()})
			return Report{}, false
		}
		return rep, true
	}

	api.GET("/report", func(c *gin.Context) {
		rep, ok := build(c)
		if !ok {
			return
		}
		c.Header("Content-Disposition", disposition(Filename(rep.Year, rep.Categories)))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(Render(rep)))
	})

	api.GET("/report.json", func(c *gin.Context) {
		rep, ok := build(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, rep)
	})
}

// disposition quotes or RFC 2231-encodes name as needed.
func disposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

// categoriesFrom accepts repeated ?category= and comma-separated values.
func categoriesFrom(c *gin.Context) []string {
	var out []string
	for _, v := range c.QueryArray("category") {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
