package tabconv_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/tabconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func people() *tabconv.Table {
	return tabconv.NewTable([]tabconv.Row{
		{"name": "Ada", "age": "36"},
		{"name": "Lin"},
	})
}

func TestWriteFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format tabconv.Format
		want   string
	}{
		"csv":      {format: tabconv.CSV, want: "age,name\n36,Ada\n,Lin"},
		"tsv":      {format: tabconv.TSV, want: "age\tname\n36\tAda\n\tLin"},
		"markdown": {format: tabconv.Markdown, want: "| age | name |\n| --- | --- |\n| 36 | Ada |\n|  | Lin |"},
		"yaml":     {format: tabconv.YAML, want: "-\n  age: \"36\"\n  name: \"Ada\"\n-\n  age: \"\"\n  name: \"Lin\""},
		"ndjson":   {format: tabconv.NDJSON, want: "{\"age\":\"36\",\"name\":\"Ada\"}\n{\"age\":\"\",\"name\":\"Lin\"}"},
		"json": {format: tabconv.JSON, want: `[
  {
    "age": "36",
    "name": "Ada"
  },
  {
    "age": "",
    "name": "Lin"
  }
]`},
		"xml": {format: tabconv.XML, want: `<items>
  <item>
    <age>36</age>
    <name>Ada</name>
  </item>
  <item>
    <age></age>
    <name>Lin</name>
  </item>
</items>`},
		"swift":      {format: tabconv.Swift, want: "struct MyModel: Codable {\n    let age: String\n    let name: String\n}"},
		"typescript": {format: tabconv.TypeScript, want: "interface MyModel {\n  age: string;\n  name: string;\n}"},
		"go":         {format: tabconv.GoStruct, want: "type MyModel struct {\n\tAge string `json:\"age\"`\n\tName string `json:\"name\"`\n}"},
		"template":   {format: tabconv.GoTemplate("{{.name}} ({{.age}})"), want: "Ada (36)\nLin ()"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := tabconv.Write(&buf, tt.format, people())
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteEmptyTable(t *testing.T) {
	t.Parallel()
	empty := tabconv.NewTable(nil)
	tests := map[tabconv.Format]string{
		tabconv.CSV:       "",
		tabconv.TSV:       "",
		tabconv.Markdown:  "",
		tabconv.YAML:      "",
		tabconv.NDJSON:    "",
		tabconv.TextTable: "",
		tabconv.JSON:      "[]",
		tabconv.XML:       "<items>\n</items>",
	}
	for f, want := range tests {
		out, err := tabconv.Marshal(f, empty)
		require.NoError(t, err, f)
		assert.Equal(t, want, string(out), f)
	}
}

func TestWriteCSVQuotesOnlySpecialFields(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{
		"comma":   "a,b",
		"quote":   `say "hi"`,
		"newline": "line1\nline2",
		"space":   " leading",
		"plain":   "x",
	}})
	out, err := tabconv.Marshal(tabconv.CSV, tbl)
	require.NoError(t, err)
	assert.Equal(t, "comma,newline,plain,quote,space\n\"a,b\",\"line1\nline2\",x,\"say \"\"hi\"\"\", leading", string(out))
}

func TestWriteYAMLAndMarkdownDoNotEscape(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{"k": `a "b"`}})
	out, err := tabconv.Marshal(tabconv.YAML, tbl)
	require.NoError(t, err)
	assert.Equal(t, "-\n  k: \"a \"b\"\"", string(out))

	back, err := tabconv.Parse(string(out), tabconv.YAML)
	require.NoError(t, err)
	assert.Equal(t, []tabconv.Row{{"k": `a "b"`}}, back.Rows())
}

func TestConverterXMLNames(t *testing.T) {
	t.Parallel()
	c := tabconv.Converter{RootName: "users", ItemName: "user"}
	out, err := c.Convert("name\nAda\nLin", tabconv.CSV, tabconv.XML)
	require.NoError(t, err)
	assert.Equal(t, "<users>\n  <user>\n    <name>Ada</name>\n  </user>\n  <user>\n    <name>Lin</name>\n  </user>\n</users>", out)

	// The singular of the root name marks rows on the way back.
	back, err := c.Convert(out, tabconv.XML, tabconv.CSV)
	require.NoError(t, err)
	assert.Equal(t, "name\nAda\nLin", back)
}

func TestConverterTypeName(t *testing.T) {
	t.Parallel()
	c := tabconv.Converter{TypeName: "Person"}
	tbl := tabconv.NewTable([]tabconv.Row{{"first name": "Ada", "user_id": "1", "2fa": "on"}})

	out, err := c.Marshal(tabconv.TypeScript, tbl)
	require.NoError(t, err)
	assert.Equal(t, "interface Person {\n  \"2fa\": string;\n  \"first name\": string;\n  user_id: string;\n}", string(out))

	out, err = c.Marshal(tabconv.GoStruct, tbl)
	require.NoError(t, err)
	assert.Equal(t, "type Person struct {\n\tF2fa string `json:\"2fa\"`\n\tFirstName string `json:\"first name\"`\n\tUserId string `json:\"user_id\"`\n}", string(out))

	out, err = c.Marshal(tabconv.Swift, tbl)
	require.NoError(t, err)
	assert.Equal(t, `struct Person: Codable {
    let f2fa: String
    let firstName: String
    let user_id: String

    enum CodingKeys: String, CodingKey {
        case f2fa = "2fa"
        case firstName = "first name"
        case user_id
    }
}`, string(out))
}

func TestWriteSwiftReservedWords(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{"class": "a", "first-name": "b", "first name": "c"}})
	out, err := tabconv.Marshal(tabconv.Swift, tbl)
	require.NoError(t, err)
	assert.Equal(t, `struct MyModel: Codable {
    let `+"`class`"+`: String
    let firstName: String
    let firstName2: String

    enum CodingKeys: String, CodingKey {
        case `+"`class`"+`
        case firstName = "first name"
        case firstName2 = "first-name"
    }
}`, string(out))
}

func TestWriteXMLSanitizesColumnNames(t *testing.T) {
	t.Parallel()
	out, err := tabconv.Convert("first name,2fa,a:b\nAda,on,x", tabconv.CSV, tabconv.XML)
	require.NoError(t, err)
	assert.Equal(t, "<items>\n  <item>\n    <_2fa>on</_2fa>\n    <a_b>x</a_b>\n    <first_name>Ada</first_name>\n  </item>\n</items>", out)
	require.NoError(t, tabconv.Lint(out, tabconv.XML))

	back, err := tabconv.Convert(out, tabconv.XML, tabconv.CSV)
	require.NoError(t, err)
	assert.Equal(t, "_2fa,a_b,first_name\non,x,Ada", back)
}

func TestConverterJSONIndent(t *testing.T) {
	t.Parallel()
	c := tabconv.Converter{Indent: "\t"}
	out, err := c.Convert("a\n1", tabconv.CSV, tabconv.JSON)
	require.NoError(t, err)
	assert.Equal(t, "[\n\t{\n\t\t\"a\": \"1\"\n\t}\n]", out)
}

// --- Text table ---

func TestWriteTextTableBorders(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		border tabconv.BorderStyle
		want   string
	}{
		"ascii": {
			border: tabconv.BorderASCII,
			want: "+-----+------+\n" +
				"| age | name |\n" +
				"+-----+------+\n" +
				"|  36 | Ada  |\n" +
				"|   7 | Lin  |\n" +
				"+-----+------+",
		},
		"rounded": {
			border: tabconv.BorderRounded,
			want: "╭─────┬──────╮\n" +
				"│ age │ name │\n" +
				"├─────┼──────┤\n" +
				"│  36 │ Ada  │\n" +
				"│   7 │ Lin  │\n" +
				"╰─────┴──────╯",
		},
		"none": {
			border: tabconv.BorderNone,
			want:   "age  name\n---  ----\n 36  Ada\n  7  Lin",
		},
	}
	tbl := tabconv.NewTable([]tabconv.Row{
		{"name": "Ada", "age": "36"},
		{"name": "Lin", "age": "7"},
	})
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := tabconv.Converter{Border: tt.border}.Marshal(tabconv.TextTable, tbl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestWriteTextTableHeavyAndDouble(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{"a": "x"}})
	out, err := tabconv.Converter{Border: tabconv.BorderHeavy}.Marshal(tabconv.TextTable, tbl)
	require.NoError(t, err)
	assert.Contains(t, string(out), "┏")
	assert.Contains(t, string(out), "┃")

	out, err = tabconv.Converter{Border: tabconv.BorderDouble}.Marshal(tabconv.TextTable, tbl)
	require.NoError(t, err)
	assert.Contains(t, string(out), "╔")
	assert.Contains(t, string(out), "║")
}

func TestWriteTextTableTitleAndTruncation(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{"note": "a very long note"}})
	c := tabconv.Converter{Border: tabconv.BorderASCII, Title: "Notes", MaxWidth: 6}
	out, err := c.Marshal(tabconv.TextTable, tbl)
	require.NoError(t, err)
	assert.Equal(t, "+--------+\n"+
		"| Notes  |\n"+
		"+--------+\n"+
		"| note   |\n"+
		"+--------+\n"+
		"| a v... |\n"+
		"+--------+", string(out))
}

func TestWriteTextTableWideChars(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{"k": "你好"}, {"k": "ab"}})
	out, err := tabconv.Converter{Border: tabconv.BorderASCII}.Marshal(tabconv.TextTable, tbl)
	require.NoError(t, err)
	assert.Contains(t, string(out), "| 你好 |")
	assert.Contains(t, string(out), "| ab   |")
}

func TestParseBorderStyle(t *testing.T) {
	t.Parallel()
	b, ok := tabconv.ParseBorderStyle("ASCII")
	assert.True(t, ok)
	assert.Equal(t, tabconv.BorderASCII, b)
	_, ok = tabconv.ParseBorderStyle("dotted")
	assert.False(t, ok)
}

// --- HTML ---

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	tbl := tabconv.NewTable([]tabconv.Row{{"name": "<b>Ada</b>", "age": "36"}})
	out, err := tabconv.Converter{Title: "People & Co"}.Marshal(tabconv.HTML, tbl)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<caption>People &amp; Co</caption>")
	assert.Contains(t, s, "<th>age</th>")
	assert.Contains(t, s, `<td style="text-align: right">36</td>`)
	assert.Contains(t, s, "<td>&lt;b&gt;Ada&lt;/b&gt;</td>")
}

// --- XLSX ---

func TestWriteXLSX(t *testing.T) {
	t.Parallel()
	out, err := tabconv.Marshal(tabconv.XLSX, people())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"age", "name"}, {"36", "Ada"}, {"", "Lin"}}, rows)
}

func TestXLSXRoundTrip(t *testing.T) {
	t.Parallel()
	c := tabconv.Converter{Sheet: "People"}
	book, err := c.Convert("name,age\nAda,36", tabconv.CSV, tabconv.XLSX)
	require.NoError(t, err)

	back, err := c.Convert(book, tabconv.XLSX, tabconv.CSV)
	require.NoError(t, err)
	assert.Equal(t, "age,name\n36,Ada", back)

	_, err = tabconv.Converter{Sheet: "Missing"}.Convert(book, tabconv.XLSX, tabconv.CSV)
	assert.ErrorIs(t, err, tabconv.ErrFormat)
}

func TestParseXLSXRejectsText(t *testing.T) {
	t.Parallel()
	_, err := tabconv.Parse("a,b\n1,2", tabconv.XLSX)
	assert.ErrorIs(t, err, tabconv.ErrFormat)
}
