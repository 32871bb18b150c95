package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/helpers/dbtime"
)

/* ===============================
   Paging resolver (query → page/perPage/offset)
=================================*/

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= & ?per_page= (or the ?limit= alias) and normalizes them.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}
	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

/* ============== small query utils ============== */

// QueryBool parses ?key=true|false|1|0; nil when absent or unparseable.
func QueryBool(c *fiber.Ctx, key string) *bool {
	s := strings.ToLower(strings.TrimSpace(c.Query(key)))
	switch s {
	case "1", "true", "yes", "y":
		b := true
		return &b
	case "0", "false", "no", "n":
		b := false
		return &b
	}
	return nil
}

// QueryDateRange reads ?from=YYYY-MM-DD&to=YYYY-MM-DD in local time; "to" is
// inclusive. Malformed or reversed bounds are a 422 on the offending field.
func QueryDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	fe := FieldErrors{}
	for _, key := range []string{"from", "to"} {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			continue
		}
		t, ok := dbtime.ParseLocalDate(raw)
		if !ok {
			fe.Add(key, "The "+key+" must be a date in YYYY-MM-DD format.")
			continue
		}
		if key == "from" {
			from = &t
		} else {
			end := t.AddDate(0, 0, 1)
			to = &end
		}
	}
	if from != nil && to != nil && !from.Before(*to) {
		fe.Add("to", "The to date must be after or equal to from.")
	}
	if len(fe) > 0 {
		return nil, nil, fe
	}
	return from, to, nil
}
