package sqlquery

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"

	"grainpay/internal/core/apperror"
	"grainpay/internal/domain"
)

// Statements builds the CRUD statements of one table.
type Statements struct {
	table   Table
	builder squirrel.StatementBuilderType
}

// New creates statements for table with the driver's placeholder format
// (squirrel.Dollar for postgres, squirrel.Question for sqlite).
func New(table Table, placeholder squirrel.PlaceholderFormat) Statements {
	return Statements{
		table:   table,
		builder: squirrel.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// Table returns the table description.
func (s Statements) Table() Table {
	return s.table
}

func (s Statements) returning() string {
	return "RETURNING " + strings.Join(s.table.Columns, ", ")
}

func (s Statements) baseSelect() squirrel.SelectBuilder {
	return s.builder.
		Select(s.table.Columns...).
		From(s.table.Name)
}

// SelectByID selects one row.
func (s Statements) SelectByID(id int64) (string, []any, error) {
	return s.baseSelect().
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// Count counts every row.
func (s Statements) Count() (string, []any, error) {
	return s.builder.
		Select("COUNT(*)").
		From(s.table.Name).
		ToSql()
}

// SelectPage selects one ordered page. Unknown sort fields are InvalidArgument.
func (s Statements) SelectPage(page domain.PageRequest) (string, []any, error) {
	orderBy, err := s.ParseSort(page.Sort)
	if err != nil {
		return "", nil, err
	}

	q := s.baseSelect().
		OrderBy(orderBy...).
		Limit(uint64(page.Size))
	if offset := page.Offset(); offset > 0 {
		q = q.Offset(uint64(offset))
	}
	return q.ToSql()
}

// Insert writes every mapped column except id and returns the stored row.
func (s Statements) Insert(e any) (string, []any, error) {
	data := StructToMap(e)
	if len(data) == 0 {
		return "", nil, fmt.Errorf("no db tags found in %T", e)
	}

	values := make(map[string]any, len(s.table.Columns))
	for _, col := range s.table.Columns {
		if col == "id" {
			continue
		}
		if val, ok := data[col]; ok {
			values[col] = val
		}
	}

	return s.builder.
		Insert(s.table.Name).
		SetMap(values).
		Suffix(s.returning()).
		ToSql()
}

// Update rewrites every mutable column of the row with e's id and returns the stored row.
func (s Statements) Update(e any) (string, []any, error) {
	data := StructToMap(e)
	if len(data) == 0 {
		return "", nil, fmt.Errorf("no db tags found in %T", e)
	}

	id, ok := data["id"]
	if !ok {
		return "", nil, fmt.Errorf("%T has no 'id' field with db tag", e)
	}

	values := make(map[string]any, len(s.table.Columns))
	for _, col := range s.table.Columns {
		if slices.Contains(s.table.Immutable, col) {
			continue
		}
		if val, ok := data[col]; ok {
			values[col] = val
		}
	}

	return s.builder.
		Update(s.table.Name).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		Suffix(s.returning()).
		ToSql()
}

// DeleteByID deletes one row.
func (s Statements) DeleteByID(id int64) (string, []any, error) {
	return s.builder.
		Delete(s.table.Name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// ParseSort turns "field", "-field", "field,asc" or "field,desc" into ORDER BY terms.
// Rows are always tie-broken by id so paging is stable.
func (s Statements) ParseSort(sort string) ([]string, error) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = domain.DefaultSort
	}

	direction := "ASC"
	field := sort
	switch {
	case strings.HasPrefix(field, "-"):
		direction = "DESC"
		field = strings.TrimPrefix(field, "-")
	case strings.HasPrefix(field, "+"):
		field = strings.TrimPrefix(field, "+")
	}

	if name, dir, found := strings.Cut(field, ","); found {
		field = name
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "asc":
			direction = "ASC"
		case "desc":
			direction = "DESC"
		default:
			return nil, apperror.NewInvalidArgument(fmt.Sprintf("invalid sort direction %q", dir))
		}
	}

	field = strings.TrimSpace(field)
	col, ok := s.table.SortFields[field]
	if !ok {
		return nil, apperror.NewInvalidArgument(fmt.Sprintf("unknown sort field %q", field))
	}

	terms := []string{col + " " + direction}
	if col != "id" {
		terms = append(terms, "id ASC")
	}
	return terms, nil
}
