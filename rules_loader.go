package streetnames

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const suffixTokenSeparator = ":"

// LoadRuleTables reads prefix and suffix tables from CSV files.
// Missing prefix file is replaced by a single sentinel prefix and missing suffix file by an empty table
// (so every suffix lookup falls back to the sentinel suffix). Malformed rows are logged and skipped
func LoadRuleTables(prefixPath, suffixPath string, logger *zap.Logger) (*RuleTables, error) {
	if logger == nil {
		logger = zap.L()
	}

	prefixes, err := loadRuleFile(prefixPath, logger, ParsePrefixRules)
	if err != nil {
		return nil, err
	}
	if prefixes == nil {
		prefixes = []*PrefixRule{missingPrefixRule()}
	}

	suffixes, err := loadRuleFile(suffixPath, logger, ParseSuffixRules)
	if err != nil {
		return nil, err
	}
	logger.Info("Rule tables loaded", zap.Int("prefixes", len(prefixes)), zap.Int("suffixes", len(suffixes)))
	return NewRuleTables(prefixes, suffixes), nil
}

// loadRuleFile returns nil rules without error if the file does not exist
func loadRuleFile[T any](path string, logger *zap.Logger, parse func(io.Reader, string, *zap.Logger) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Rule table not found", zap.String("file", path))
			return nil, nil
		}
		return nil, errors.Wrap(err, "Can't open rule table")
	}
	defer file.Close()
	rules, err := parse(file, path, logger)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []T{}
	}
	return rules, nil
}

func newRuleReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.Comment = '#'
	return reader
}

// readRuleRows calls handle for every row of a rule table. Rows the CSV reader rejects are logged and skipped
func readRuleRows(r io.Reader, source string, logger *zap.Logger, handle func(line int, record []string)) error {
	reader := newRuleReader(r)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Warn("Invalid rule row", zap.String("file", source), zap.Int("line", parseErr.Line), zap.Error(err))
				continue
			}
			return errors.Wrap(err, "Can't read rule table")
		}
		line, _ := reader.FieldPos(0)
		handle(line, record)
	}
}

// ParsePrefixRules parses rows of form "name, weight, token*". Tokens are category names (allowed categories),
// feature names (required features) or feature names with exclusion marker (forbidden features)
func ParsePrefixRules(r io.Reader, source string, logger *zap.Logger) ([]*PrefixRule, error) {
	rules := []*PrefixRule{}
	seen := make(map[string]struct{})
	err := readRuleRows(r, source, logger, func(line int, record []string) {
		rowLogger := logger.With(zap.String("file", source), zap.Int("line", line), zap.Strings("row", record))
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			rowLogger.Warn("Invalid prefix row: name and weight are required")
			return
		}
		name := strings.TrimSpace(record[0])
		if _, ok := seen[name]; ok {
			rowLogger.Warn("Duplicate prefix row")
			return
		}
		weight, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || weight < 0 {
			rowLogger.Warn("Invalid prefix row: bad weight")
			return
		}

		rule := NewPrefixRule(name, weight)
		allowed := CategorySet(0)
		for _, token := range record[2:] {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if categories := getCategorySet(token); categories != 0 {
				allowed |= categories
				continue
			}
			feature, negated := getFeature(token)
			if feature == FEATURE_NONE {
				rowLogger.Warn("Unknown prefix token", zap.String("token", token))
				continue
			}
			if negated {
				rule.ForbiddenFeatures |= feature
			} else {
				rule.RequiredFeatures |= feature
			}
		}
		if allowed != 0 {
			rule.AllowedCategories = allowed
		}
		seen[name] = struct{}{}
		rules = append(rules, rule)
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// ParseSuffixRules parses rows of form "name, key:level*". Keys are category names (base frequency) or
// feature names optionally carrying exclusion marker (frequency modifiers)
func ParseSuffixRules(r io.Reader, source string, logger *zap.Logger) ([]*SuffixRule, error) {
	rules := []*SuffixRule{}
	seen := make(map[string]struct{})
	err := readRuleRows(r, source, logger, func(line int, record []string) {
		rowLogger := logger.With(zap.String("file", source), zap.Int("line", line), zap.Strings("row", record))
		name := strings.TrimSpace(record[0])
		if name == "" {
			rowLogger.Warn("Invalid suffix row: name is required")
			return
		}
		if _, ok := seen[name]; ok {
			rowLogger.Warn("Duplicate suffix row")
			return
		}

		rule := NewSuffixRule(name)
		for _, token := range record[1:] {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			key, level, ok := strings.Cut(token, suffixTokenSeparator)
			if !ok {
				// partially parsed row is discarded
				rowLogger.Warn("Invalid suffix row: token has no level", zap.String("token", token))
				return
			}
			frequency := getFrequency(level)
			if categories := getCategorySet(key); categories != 0 {
				rule.SetFrequency(categories, frequency)
				continue
			}
			feature, negated := getFeature(key)
			if feature == FEATURE_NONE {
				rowLogger.Warn("Unknown suffix token", zap.String("token", token))
				continue
			}
			rule.AddModifier(feature, frequency, negated)
		}
		seen[name] = struct{}{}
		rules = append(rules, rule)
	})
	if err != nil {
		return nil, err
	}
	return rules, nil
}
