package universe

import "testing"

func TestStatic_Instruments(t *testing.T) {
	p := NewStatic(map[string]string{
		"삼성전자":   "005930.KS",
		"SK하이닉스": "000660.KS",
	})
	got, err := p.Instruments()
	if err != nil {
		t.Fatalf("instruments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 instruments, got %d", len(got))
	}
	if got["삼성전자"] != "005930.KS" {
		t.Errorf("unexpected code: %s", got["삼성전자"])
	}
}

func TestStatic_Empty(t *testing.T) {
	p := NewStatic(nil)
	if _, err := p.Instruments(); err == nil {
		t.Fatal("expected error for empty universe")
	}
}

func TestParseCorpList(t *testing.T) {
	html := `<table>
		<tr><td>회사명</td><td>종목코드</td><td>업종</td></tr>
		<tr><td>삼성전자</td><td>005930</td><td>전자부품</td></tr>
		<tr><td>SK하이닉스</td><td>000660</td><td>반도체</td></tr>
	</table>`
	symbols, err := ParseCorpList(html)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(symbols))
	}
	if symbols["삼성전자"] != "005930.KS" {
		t.Errorf("expected 005930.KS, got %s", symbols["삼성전자"])
	}
	if symbols["SK하이닉스"] != "000660.KS" {
		t.Errorf("expected 000660.KS, got %s", symbols["SK하이닉스"])
	}
}

func TestParseCorpList_NoRows(t *testing.T) {
	if _, err := ParseCorpList("<table></table>"); err == nil {
		t.Fatal("expected error for empty table")
	}
}
