package order

// RowIterator walks the raw rows of one worksheet, top to bottom, once.
// Restarting means parsing the workbook again.
type RowIterator interface {
	Next() bool
	Columns() ([]string, error)
	Error() error
	Close() error
}

// MapRows consumes it and maps every data row. The first row is the header
// and is skipped whatever it holds; wholly blank rows are skipped too. The
// caller keeps ownership of it and must Close it.
//
// An iterator error aborts the walk and no partial result is returned.
func MapRows(it RowIterator) ([]OrderLineRecord, error) {
	records := make([]OrderLineRecord, 0)
	header := true
	for it.Next() {
		cells, err := it.Columns()
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if blankRow(cells) {
			continue
		}
		records = append(records, MapRow(len(records)+1, cells))
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return records, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if !IsBlank(c) {
			return false
		}
	}
	return true
}

// SliceRows is an in-memory RowIterator.
type SliceRows struct {
	rows   [][]string
	cur    int
	closed bool
}

// NewSliceRows returns an iterator over rows, header included.
func NewSliceRows(rows [][]string) *SliceRows {
	return &SliceRows{rows: rows, cur: -1}
}

func (s *SliceRows) Next() bool {
	if s.closed || s.cur+1 >= len(s.rows) {
		return false
	}
	s.cur++
	return true
}

func (s *SliceRows) Columns() ([]string, error) {
	if s.cur < 0 || s.cur >= len(s.rows) {
		return nil, nil
	}
	return s.rows[s.cur], nil
}

func (s *SliceRows) Error() error { return nil }

func (s *SliceRows) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *SliceRows) Closed() bool { return s.closed }
