package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/siherrmann/vnextract/model"
)

// DateEntityType is the entity type the date formatter rewrites
const DateEntityType = "DATETIME"

var (
	fullDatePattern  = regexp2.MustCompile(`(?:ngày\s+)?\b(\d{1,2})\s+tháng\s+(\d{1,2})\s*(?:,\s*)?năm\s+(\d{4})\b`, regexp2.IgnoreCase)
	monthYearPattern = regexp2.MustCompile(`\btháng\s+(\d{1,2})\s*(?:,\s*)?năm\s+(\d{4})\b`, regexp2.IgnoreCase)
	isoDatePattern   = regexp2.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`, regexp2.IgnoreCase)
	numDatePattern   = regexp2.MustCompile(`\b(\d{1,2})\s*[-/.]\s*(\d{1,2})\s*[-/.]\s*(\d{2,4})\b`, regexp2.IgnoreCase)
	yearPattern      = regexp2.MustCompile(`\bnăm\s+(\d{4})\b`, regexp2.IgnoreCase)
	relativePattern  = regexp2.MustCompile(`(?<![\p{L}])(hôm nay|hôm qua|hôm kia|ngày mai|ngày kia)(?![\p{L}])`, regexp2.IgnoreCase)
)

var relativeDays = map[string]int{
	"hôm nay":  0,
	"hôm qua":  -1,
	"hôm kia":  -2,
	"ngày mai": 1,
	"ngày kia": 2,
}

// DateFormatter groups consecutive DATETIME words and rewrites the date they
// express as DD/MM/YYYY, MM/YYYY or YYYY. Relative days are resolved against
// reference. A rewritten group becomes a single B-DATETIME word; groups
// without a recognizable date, or whose most specific date is not a calendar
// date, are kept as they are.
func DateFormatter(reference time.Time) FormatFunc {
	parser := when.New(nil)
	parser.Add(common.All...)
	rules := dateRules(parser, reference)

	return func(tagged []model.TaggedWord) ([]model.TaggedWord, []model.DateChange, error) {
		normalized := make([]model.TaggedWord, 0, len(tagged))
		changes := []model.DateChange{}

		for i := 0; i < len(tagged); {
			if !isType(tagged[i].Tag, DateEntityType) {
				normalized = append(normalized, tagged[i])
				i++
				continue
			}

			end := i + 1
			for end < len(tagged) && tagged[end].Tag == "I-"+DateEntityType {
				end++
			}

			words := make([]string, 0, end-i)
			for _, word := range tagged[i:end] {
				words = append(words, word.Word)
			}
			original := strings.Join(words, " ")

			formatted, ok, err := formatDate(rules, original)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to format date %q: %w", original, err)
			}
			if !ok || formatted == original {
				normalized = append(normalized, tagged[i:end]...)
				i = end
				continue
			}

			normalized = append(normalized, model.TaggedWord{
				Word:  formatted,
				Tag:   "B-" + DateEntityType,
				Score: tagged[i].Score,
			})
			changes = append(changes, model.DateChange{
				Original:   original,
				Normalized: formatted,
				Start:      i,
				End:        end,
			})
			i = end
		}

		return normalized, changes, nil
	}
}

// dateRule rewrites the capture groups of its pattern into a formatted date
type dateRule struct {
	pattern *regexp2.Regexp
	format  func(groups []string) (string, bool, error)
}

// dateRules lists the date expressions from the most to the least specific.
// Explicit dates win over relative days.
func dateRules(parser *when.Parser, reference time.Time) []dateRule {
	return []dateRule{
		{fullDatePattern, func(g []string) (string, bool, error) {
			return formatDay(atoi(g[2]), atoi(g[1]), atoi(g[0]))
		}},
		{monthYearPattern, func(g []string) (string, bool, error) {
			month, year := atoi(g[0]), atoi(g[1])
			if month < 1 || month > 12 {
				return "", false, nil
			}
			return fmt.Sprintf("%02d/%04d", month, year), true, nil
		}},
		{isoDatePattern, func(g []string) (string, bool, error) {
			return formatDay(atoi(g[0]), atoi(g[1]), atoi(g[2]))
		}},
		{numDatePattern, func(g []string) (string, bool, error) {
			return parseNumericDate(parser, g, reference)
		}},
		{yearPattern, func(g []string) (string, bool, error) {
			return fmt.Sprintf("%04d", atoi(g[0])), true, nil
		}},
		{relativePattern, func(g []string) (string, bool, error) {
			offset := relativeDays[strings.ToLower(g[0])]
			return reference.AddDate(0, 0, offset).Format("02/01/2006"), true, nil
		}},
	}
}

// formatDate applies the first rule whose pattern matches text. That rule
// decides alone: a date it rejects, such as 31 tháng 2 năm 2023, is not
// retried with a less specific rule and stays unchanged.
func formatDate(rules []dateRule, text string) (string, bool, error) {
	for _, rule := range rules {
		groups, err := submatches(rule.pattern, text)
		if err != nil {
			return "", false, err
		}
		if groups != nil {
			return rule.format(groups)
		}
	}
	return "", false, nil
}

// parseNumericDate hands a day-first numeric date to the slash rule of when
// and checks that the calendar kept the day and month
func parseNumericDate(parser *when.Parser, groups []string, reference time.Time) (string, bool, error) {
	day, month, year := atoi(groups[0]), atoi(groups[1]), atoi(groups[2])
	if len(groups[2]) == 2 {
		year += 2000
		if year > reference.Year()+10 {
			year -= 100
		}
	}
	if len(groups[2]) == 3 {
		return "", false, nil
	}

	result, err := parser.Parse(fmt.Sprintf("%d/%d/%04d", day, month, year), reference)
	if err != nil {
		return "", false, err
	}
	if result == nil {
		return "", false, nil
	}
	if result.Time.Day() != day || int(result.Time.Month()) != month || result.Time.Year() != year {
		return "", false, nil
	}
	return result.Time.Format("02/01/2006"), true, nil
}

// formatDay validates a calendar day and formats it as DD/MM/YYYY
func formatDay(year, month, day int) (string, bool, error) {
	if month < 1 || month > 12 || day < 1 {
		return "", false, nil
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month {
		return "", false, nil
	}
	return date.Format("02/01/2006"), true, nil
}

// submatches returns the capture groups of the first match, nil without a match
func submatches(re *regexp2.Regexp, text string) ([]string, error) {
	match, err := re.FindStringMatch(text)
	if err != nil || match == nil {
		return nil, err
	}
	groups := match.Groups()
	out := make([]string, 0, len(groups)-1)
	for _, group := range groups[1:] {
		out = append(out, group.String())
	}
	return out, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
