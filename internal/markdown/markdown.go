package markdown

import (
	"bufio"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tamasfe/scaffold/pkg/registry"
	"gopkg.in/yaml.v3"
)

// OptionsTable lists the fields of an options struct (or pointer to one)
// with their descriptions and default values.
func OptionsTable(opts interface{}) string {
	var entriesBuilder strings.Builder

	optsVal := reflect.Indirect(reflect.ValueOf(opts))
	optsTp := optsVal.Type()

	entriesBuilder.WriteString(`
| Option | Description | Type | Default Value |
|:------:|-------------|:----:|:--------------|
`[1:])

	fieldNames := make(map[string]int, optsTp.NumField())
	fields := make([]string, 0, optsTp.NumField())
	for i := 0; i < optsTp.NumField(); i++ {
		field := optsTp.Field(i)
		fieldNames[field.Name] = i
		fields = append(fields, field.Name)
	}

	sort.Strings(fields)

	for _, f := range fields {
		field := optsTp.Field(fieldNames[f])
		val := optsVal.Field(fieldNames[f]).Interface()

		valB, err := yaml.Marshal(val)
		if err != nil {
			panic(err)
		}

		entriesBuilder.WriteString(
			strings.Join(
				[]string{
					"|" + strings.Split(field.Tag.Get("yaml"), ",")[0],
					field.Tag.Get("description") + ".",
					field.Type.String(),
					strings.Replace("<pre lang=\"yaml\">"+string(valB[:len(valB)-1])+"</pre>", "\n", "<br>", -1),
				},
				"|",
			) + "|\n",
		)
	}

	return entriesBuilder.String()
}

// ValuesTable lists the fields of a struct with their descriptions,
// used for values available in templates.
func ValuesTable(values interface{}) string {
	var entriesBuilder strings.Builder

	tp := reflect.Indirect(reflect.ValueOf(values)).Type()

	entriesBuilder.WriteString(`
| Value | Description |
|:-----:|-------------|
`[1:])

	for i := 0; i < tp.NumField(); i++ {
		field := tp.Field(i)

		entriesBuilder.WriteString(
			strings.Join(
				[]string{
					"|." + field.Name,
					field.Tag.Get("description"),
				},
				"|",
			) + "|\n",
		)
	}

	return entriesBuilder.String()
}

// UseCasesTable lists the use cases in registry order.
func UseCasesTable(useCases []registry.UseCaseEntry) string {
	var b strings.Builder

	b.WriteString(`
| Identifier | Title | Template |
|------------|-------|:--------:|
`[1:])

	for _, u := range useCases {
		b.WriteString(strings.Join([]string{"|`" + u.Identifier + "`", escape(u.Title), u.Template}, "|") + "|\n")
	}

	return b.String()
}

// ProjectsTable lists the contract projects in registry order.
func ProjectsTable(projects []registry.ContractProjectSpec) string {
	var b strings.Builder

	b.WriteString(`
| Identifier | Title | Port | Write operations | Read operations |
|------------|-------|:----:|------------------|-----------------|
`[1:])

	for _, p := range projects {
		b.WriteString(strings.Join([]string{
			"|`" + p.Identifier + "`",
			escape(p.Title),
			strconv.Itoa(p.Port),
			codeList(p.WriteOperations),
			codeList(p.ReadOperations),
		}, "|") + "|\n")
	}

	return b.String()
}

func codeList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, i := range items {
		quoted = append(quoted, "`"+i+"`")
	}
	return strings.Join(quoted, ", ")
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

var anchorStrip = regexp.MustCompile(`[^a-z0-9 _-]`)

// Anchor returns the GitHub anchor of a heading.
func Anchor(heading string) string {
	a := strings.ToLower(strings.TrimSpace(heading))
	a = anchorStrip.ReplaceAllString(a, "")
	return strings.ReplaceAll(a, " ", "-")
}

// GenTOC prepends a table of contents of the headings in md.
func GenTOC(header, md string) string {
	var toc strings.Builder

	used := make(map[string]int)
	inCode := false

	scn := bufio.NewScanner(strings.NewReader(md))
	for scn.Scan() {
		line := scn.Text()

		if strings.HasPrefix(line, "```") {
			inCode = !inCode
			continue
		}

		if inCode || !strings.HasPrefix(line, "#") {
			continue
		}

		level := len(line) - len(strings.TrimLeft(line, "#"))
		title := strings.TrimSpace(line[level:])
		if title == "" {
			continue
		}

		anchor := Anchor(title)
		if n := used[anchor]; n > 0 {
			used[anchor] = n + 1
			anchor = fmt.Sprintf("%v-%v", anchor, n)
		} else {
			used[anchor] = 1
		}

		toc.WriteString(fmt.Sprintf("%v* [%v](#%v)\n", strings.Repeat("   ", level-1), title, anchor))
	}

	return header + toc.String() + "\n" + md
}
