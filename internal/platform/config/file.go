package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileNames lists the project configuration files probed in the working
// directory, in order. The first one that exists wins.
var FileNames = []string{".documenter.json", ".documenter.yaml"}

// LoadFile reads the first configuration file found in dir and validates it
// in [ModeFile]. It returns the partial configuration and the path it came
// from; when no candidate exists both are empty and err is nil.
//
// Only a missing file moves on to the next candidate. Unreadable files,
// syntax errors, unknown keys and schema violations all fail the load.
func LoadFile(dir string, v Validator) (Partial, string, error) {
	if v == nil {
		v = NewSchemaValidator()
	}

	for _, name := range FileNames {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Partial{}, "", newConfigError("Failed to access configuration file", err, "path", path)
		}

		p, err := readFile(path, v)
		if err != nil {
			return Partial{}, "", err
		}
		return p, path, nil
	}

	return Partial{}, "", nil
}

func readFile(path string, v Validator) (Partial, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return Partial{}, newConfigError("Failed to parse configuration file "+path, err, "path", path)
	}

	var p Partial
	if err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:      &p,
			ErrorUnused: true,
			DecodeHook:  wholeNumberHook(),
		},
	}); err != nil {
		return Partial{}, newConfigError("Invalid configuration file "+path, err, "path", path)
	}

	if err := v.Validate(&p, ModeFile); err != nil {
		return Partial{}, newConfigError("Invalid configuration file "+path, err,
			"path", path,
			"violations", violationStrings(err),
		)
	}

	return p, nil
}

// wholeNumberHook lets JSON numbers, which the parser yields as float64,
// fill integer fields only when they carry no fractional part. Decoding is
// otherwise strict: strings, bools and fractions never become integers.
func wholeNumberHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		for to.Kind() == reflect.Pointer {
			to = to.Elem()
		}
		switch to.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return data, nil
		}
		if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
			return data, nil
		}

		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			return nil, fmt.Errorf("expected a whole number, got %v", f)
		}
		return int64(f), nil
	}
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return json.Parser()
	}
}
