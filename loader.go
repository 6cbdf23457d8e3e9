package lingo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pitabwire/util"
	"gopkg.in/yaml.v3"
)

// messageFileExts lists the recognised message file extensions in lookup
// order; the first file found for a language wins.
var messageFileExts = []string{".json", ".toml", ".yaml", ".yml"}

var unmarshalFuncs = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

// LoadDirectory reads messages.<code>.<ext> files from dir for each supplied
// language code and assembles them into a Table. A language without a message
// file stays out of the table; lookups against it degrade to the miss
// placeholder rather than failing the load.
func LoadDirectory(ctx context.Context, dir string, languages ...string) (Table, error) {
	if dir == "" {
		dir = "localization"
	}

	table := Table{}
	for _, lang := range languages {
		entries, err := loadMessageFile(dir, lang)
		if err != nil {
			return nil, err
		}

		if entries == nil {
			util.Log(ctx).WithField("language", lang).WithField("dir", dir).Debug("no message file for language")
			continue
		}

		table[lang] = entries
	}

	return table, nil
}

func loadMessageFile(dir, lang string) (map[string]any, error) {
	for _, ext := range messageFileExts {
		path := filepath.Join(dir, fmt.Sprintf("messages.%s%s", lang, ext))

		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		var entries map[string]any
		if err = unmarshalFuncs[ext](data, &entries); err != nil {
			return nil, fmt.Errorf("lingo: decode %s: %w", path, err)
		}

		return entries, nil
	}

	return nil, nil
}
