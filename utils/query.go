package utils

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// List endpoint plumbing: `select` field projection, `sort` (comma list,
// leading "-" for descending), offset pagination via `page`/`limit` with
// next/prev descriptors, and filter operators in the `field[op]` query form
// (gt, gte, lt, lte, in).

type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next *Page `json:"next,omitempty"`
	Prev *Page `json:"prev,omitempty"`
}

var reservedParams = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

// Column names are whitelisted by shape; anything else is ignored rather
// than interpolated into SQL.
var columnRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ApplyFilters translates field[op] query params into WHERE clauses.
func ApplyFilters(q *gorm.DB, params map[string]string) *gorm.DB {
	for key, val := range params {
		if reservedParams[key] {
			continue
		}
		col, op := key, "eq"
		if i := strings.Index(key, "["); i > 0 && strings.HasSuffix(key, "]") {
			col, op = key[:i], key[i+1:len(key)-1]
		}
		if !columnRe.MatchString(col) {
			continue
		}
		switch op {
		case "eq":
			q = q.Where(col+" = ?", val)
		case "gt":
			q = q.Where(col+" > ?", val)
		case "gte":
			q = q.Where(col+" >= ?", val)
		case "lt":
			q = q.Where(col+" < ?", val)
		case "lte":
			q = q.Where(col+" <= ?", val)
		case "in":
			q = q.Where(col+" IN ?", strings.Split(val, ","))
		}
	}
	return q
}

// SelectColumns parses a comma-separated projection, dropping anything that
// does not look like a column.
func SelectColumns(selectParam string) []string {
	if selectParam == "" {
		return nil
	}
	var cols []string
	for _, f := range strings.Split(selectParam, ",") {
		f = strings.TrimSpace(f)
		if columnRe.MatchString(f) {
			cols = append(cols, f)
		}
	}
	return cols
}

// OrderClause turns the sort parameter into an ORDER BY clause, defaulting
// to newest first.
func OrderClause(sortParam string) string {
	if sortParam == "" {
		return "created_at DESC"
	}
	var parts []string
	for _, f := range strings.Split(sortParam, ",") {
		f = strings.TrimSpace(f)
		desc := strings.HasPrefix(f, "-")
		f = strings.TrimPrefix(f, "-")
		if !columnRe.MatchString(f) {
			continue
		}
		if desc {
			parts = append(parts, f+" DESC")
		} else {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return "created_at DESC"
	}
	return strings.Join(parts, ", ")
}

// Paginate computes the offset window and the next/prev descriptors.
func Paginate(page, limit int, total int64) (offset int, p Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset = (page - 1) * limit
	if int64(page*limit) < total {
		p.Next = &Page{Page: page + 1, Limit: limit}
	}
	if offset > 0 {
		p.Prev = &Page{Page: page - 1, Limit: limit}
	}
	return offset, p
}

// List runs a filtered, sorted, projected, paginated query against base and
// sends the standard envelope. base must already carry its Model and any
// scoping conditions.
func List(c *fiber.Ctx, base *gorm.DB, dest any) error {
	q := ApplyFilters(base.Session(&gorm.Session{}), c.Queries())

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to count results",
		})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	offset, pagination := Paginate(page, limit, total)

	if cols := SelectColumns(c.Query("select")); cols != nil {
		q = q.Select(cols)
	}
	q = q.Order(OrderClause(c.Query("sort"))).Offset(offset).Limit(limit)

	if err := q.Find(dest).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "failed to fetch results",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"count":      total,
		"pagination": pagination,
		"data":       dest,
	})
}
