package lexicon

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSkillsData marks an external skills file that cannot be merged.
var ErrInvalidSkillsData = errors.New("invalid skills data")

// SkillsData maps a category name to additional skill names. Keys starting
// with an underscore are metadata and are ignored.
type SkillsData map[string][]string

// LoadSkillsData reads an external skills file. YAML and JSON are both accepted.
func LoadSkillsData(path string) (data SkillsData, err error) {
	var raw []byte
	raw, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read skills data file: %s", path)
		return data, err
	}

	data, err = ParseSkillsData(raw)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse skills data file: %s", path)
		return data, err
	}

	return data, err
}

// ParseSkillsData decodes skills data from YAML or JSON bytes.
func ParseSkillsData(raw []byte) (data SkillsData, err error) {
	var nodes map[string]yaml.Node
	err = yaml.Unmarshal(raw, &nodes)
	if err != nil {
		err = errors.Wrap(ErrInvalidSkillsData, err.Error())
		return data, err
	}

	data = make(SkillsData, len(nodes))
	for category, node := range nodes {
		if strings.HasPrefix(category, "_") {
			continue
		}

		var skills []string
		err = node.Decode(&skills)
		if err != nil {
			err = errors.Wrapf(ErrInvalidSkillsData, "category %q is not a list of skill names", category)
			return data, err
		}
		data[strings.ToLower(strings.TrimSpace(category))] = skills
	}

	return data, err
}

// Load builds a Lexicon from the built-in tables and, when path is set, the
// skills file at path.
func Load(path string) (lex *Lexicon, err error) {
	if path == "" {
		lex = Default()
		return lex, err
	}

	var data SkillsData
	data, err = LoadSkillsData(path)
	if err != nil {
		return lex, err
	}

	lex = New(data)
	return lex, err
}
