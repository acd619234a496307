package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"iconpack/internal/domain"
)

// DefaultOutputDir is where the icon pack is written unless told otherwise
const DefaultOutputDir = "."

// RulesFile is the on-disk form of domain.Rules
type RulesFile struct {
	Whitelist      []string            `mapstructure:"whitelist" yaml:"whitelist"`
	Substitutions  []SubstitutionEntry `mapstructure:"substitutions" yaml:"substitutions"`
	ShortNameFixes []SubstitutionEntry `mapstructure:"short_name_fixes" yaml:"short_name_fixes"`
}

// SubstitutionEntry is one ordered rewrite rule
type SubstitutionEntry struct {
	Pattern     string `mapstructure:"pattern" yaml:"pattern"`
	Replacement string `mapstructure:"replacement" yaml:"replacement"`
}

// LoadRules returns the default rules, overridden by the tables set in the given file.
// The file may be YAML, JSON or TOML; an empty path means defaults only.
func LoadRules(path string) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if path == "" {
		return rules, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.Rules{}, fmt.Errorf("failed to read rules %s: %w", path, err)
	}

	var file RulesFile
	if err := v.Unmarshal(&file); err != nil {
		return domain.Rules{}, fmt.Errorf("failed to parse rules %s: %w", path, err)
	}

	if v.IsSet("whitelist") {
		rules.Whitelist = append([]string{}, file.Whitelist...)
	}
	if v.IsSet("substitutions") {
		rules.Substitutions = toSubstitutions(file.Substitutions)
	}
	if v.IsSet("short_name_fixes") {
		rules.ShortNameFixes = toSubstitutions(file.ShortNameFixes)
	}

	return rules, nil
}

// DumpRules renders rules as YAML, in the format LoadRules reads
func DumpRules(rules domain.Rules) ([]byte, error) {
	file := RulesFile{
		Whitelist:      rules.Whitelist,
		Substitutions:  fromSubstitutions(rules.Substitutions),
		ShortNameFixes: fromSubstitutions(rules.ShortNameFixes),
	}
	return yaml.Marshal(&file)
}

func toSubstitutions(entries []SubstitutionEntry) []domain.Substitution {
	subs := make([]domain.Substitution, 0, len(entries))
	for _, e := range entries {
		subs = append(subs, domain.Substitution{Pattern: e.Pattern, Replacement: e.Replacement})
	}
	return subs
}

func fromSubstitutions(subs []domain.Substitution) []SubstitutionEntry {
	entries := make([]SubstitutionEntry, 0, len(subs))
	for _, s := range subs {
		entries = append(entries, SubstitutionEntry{Pattern: s.Pattern, Replacement: s.Replacement})
	}
	return entries
}
