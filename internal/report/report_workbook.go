package report

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// numFmtMoney adalah format bawaan Excel "#,##0.00".
const numFmtMoney = 4

type column struct {
	header string
	width  float64
	money  bool
}

// sheet adalah satu tabel: satu baris header lalu baris data.
type sheet struct {
	name    string
	columns []column
	rows    [][]any
}

func (s sheet) render() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", s.name); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2F5597"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 2},
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return nil, err
	}

	headers := make([]any, len(s.columns))
	for i, col := range s.columns {
		headers[i] = col.header
	}
	if err := f.SetSheetRow(s.name, "A1", &headers); err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(s.columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(s.name, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return nil, err
		}
	}

	for i, col := range s.columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if col.width > 0 {
			if err := f.SetColWidth(s.name, name, name, col.width); err != nil {
				return nil, err
			}
		}
		if col.money && len(s.rows) > 0 {
			if err := f.SetCellStyle(s.name, name+"2", name+strconv.Itoa(len(s.rows)+1), moneyStyle); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
