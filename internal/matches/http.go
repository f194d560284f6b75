package matches

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ----- Response mapping -----

// view is a match as the API returns it: stored fields plus derived ones.
type view struct {
	Match
	HomeTotal int        `json:"homeTotal"`
	AwayTotal int        `json:"awayTotal"`
	Start     *time.Time `json:"start,omitempty"`
	End       *time.Time `json:"end,omitempty"`
}

func toView(m Match) view {
	v := view{Match: m, HomeTotal: m.HomeTotal(), AwayTotal: m.AwayTotal()}
	if w, err := m.Window(); err == nil {
		v.Start, v.End = &w.Start, &w.End
	}
	return v
}

func toViewList(list []Match) []view {
	out := make([]view, 0, len(list))
	for _, m := range list {
		out = append(out, toView(m))
	}
	return out
}

// ErrorStatus maps domain errors onto HTTP status codes.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrEmptySelection):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedDate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWith(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	var ve *ValidationError
	if errors.As(err, &ve) {
		body["fields"] = ve.Fields
	}
	c.AbortWithStatusJSON(ErrorStatus(err), body)
}

// ----- Routes -----

func RegisterRoutes(r *gin.Engine, store *Store) {
	api := r.Group("/api")
	{
		api.POST("/matches/import", func(c *gin.Context) {
			if err := c.Request.ParseMultipartForm(12 << 20); err != nil { // 12MB
				c.JSON(http.StatusBadRequest, gin.H{"error": "multipart too large"})
				return
			}
			fh, err := c.FormFile("file")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
				return
			}
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			defer f.Close()

			rows, err := ParseImport(fh.Filename, f)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, store.Import(c.Request.Context(), rows))
		})

		// Delete all matches
		api.DELETE("/matches", func(c *gin.Context) {
			n, err := store.Clear(c.Request.Context())
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"deleted": n})
		})

		api.GET("/matches.ics", func(c *gin.Context) {
			list := Arrange(store.List())
			c.Header("Content-Type", "text/calendar; charset=utf-8")
			c.Header("Content-Disposition", "attachment; filename=matches.ics")
			if err := WriteICS(c.Writer, list, time.Now()); err != nil {
				c.String(http.StatusInternalServerError, err.Error())
			}
		})

		api.GET("/matches.csv", func(c *gin.Context) {
			list := Arrange(store.List())
			filename := fmt.Sprintf("matches_%s.csv", time.Now().Format(DateLayout))
			c.Header("Content-Type", "text/csv; charset=utf-8")
			c.Header("Content-Disposition", "attachment; filename="+filename)
			if err := WriteCSV(c.Writer, list); err != nil {
				c.String(http.StatusInternalServerError, err.Error())
			}
		})

		api.GET("/matches", func(c *gin.Context) {
			filter, err := ParseFilter(c.DefaultQuery("status", string(FilterAll)))
			if err != nil {
				abortWith(c, err)
				return
			}
			list, err := store.Project(filter)
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusOK, toViewList(list))
		})

		api.GET("/matches/:id", func(c *gin.Context) {
			m, err := store.Get(c.Param("id"))
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusOK, toView(m))
		})

		api.GET("/matches/:id/calendar", func(c *gin.Context) {
			m, err := store.Get(c.Param("id"))
			if err != nil {
				abortWith(c, err)
				return
			}
			u, err := CalendarURL(m)
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"url": u})
		})

		api.POST("/matches", func(c *gin.Context) {
			var d Draft
			if err := c.BindJSON(&d); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			m, err := store.Create(c.Request.Context(), d)
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusCreated, toView(m))
		})

		api.PATCH("/matches/:id", func(c *gin.Context) {
			var f Fields
			if err := c.BindJSON(&f); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			m, err := store.Update(c.Request.Context(), c.Param("id"), f)
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusOK, toView(m))
		})

		api.POST("/matches/:id/toggle", func(c *gin.Context) {
			m, err := store.ToggleStatus(c.Request.Context(), c.Param("id"))
			if err != nil {
				abortWith(c, err)
				return
			}
			c.JSON(http.StatusOK, toView(m))
		})

		api.DELETE("/matches/:id", func(c *gin.Context) {
			if err := store.Remove(c.Request.Context(), c.Param("id")); err != nil {
				abortWith(c, err)
				return
			}
			c.Status(http.StatusNoContent)
		})
	}
}
