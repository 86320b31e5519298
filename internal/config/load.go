// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gopkg.in/yaml.v3"
)

func (c *Config) FilePath() string { return c.file }

func (c *Config) LoadFrom(file string) error {
	return c.LoadFromFS(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}

func (c *Config) LoadFromFS(fs fs.FS, file string) error {
	format, err := formatFor(file)
	if err != nil {
		return err
	}

	f, err := fs.Open(file)
	if err != nil {
		return errors.UnknownError.WithFormat("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(f)
	if err != nil {
		return errors.UnknownError.WithFormat("read config: %w", err)
	}

	c.file = file
	c.fs = fs
	return c.Load(b, format)
}

func formatFor(file string) (func([]byte, any) error, error) {
	switch s := filepath.Ext(file); s {
	case ".toml", ".tml", ".ini":
		return toml.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".json":
		return json.Unmarshal, nil
	default:
		return nil, errors.BadRequest.WithFormat("unknown file type %s", s)
	}
}

// Load decodes the configuration. Keys may be kebab-case or camelCase.
func (c *Config) Load(b []byte, format func([]byte, any) error) error {
	err := decode(b, format, c)
	if err != nil {
		return errors.UnknownError.WithFormat("decode config: %w", err)
	}

	err = c.applyDotEnv()
	if err != nil {
		return err
	}
	c.applyDefaults()
	return nil
}

// DecodeFile decodes a TOML, YAML, or JSON document into v, choosing the
// format by the file extension. Keys may be kebab-case or camelCase.
func DecodeFile(file string, b []byte, v any) error {
	format, err := formatFor(file)
	if err != nil {
		return err
	}
	return decode(b, format, v)
}

func decode(b []byte, format func([]byte, any) error, dst any) error {
	var v any
	err := format(b, &v)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}

	v = remap(v, kebab2camel, nil)
	b, err = json.Marshal(v)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}

	err = json.Unmarshal(b, dst)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	return nil
}

func (c *Config) applyDotEnv() error {
	if !setDefaultPtr(&c.DotEnv, false) {
		return nil
	}
	if c.fs == nil {
		c.fs = os.DirFS(".")
	}

	file := ".env"
	if c.file != "" {
		file = filepath.Join(filepath.Dir(c.file), file)
	}

	var expand func(name string) string
	var errs []error

	f, err := c.fs.Open(file)
	switch {
	case err == nil:
		defer func() { _ = f.Close() }()

		env, err := godotenv.Parse(f)
		if err != nil {
			return errors.BadRequest.WithFormat("parse %s: %w", file, err)
		}

		expand = func(name string) string {
			value, ok := env[name]
			if ok {
				return value
			}
			errs = append(errs, fmt.Errorf("%q is not defined", name))
			return fmt.Sprintf("#!MISSING(%q)", name)
		}

	case errors.Is(err, fs.ErrNotExist):
		// Only an error if something needs expanding
		expand = func(name string) string {
			if len(errs) == 0 {
				errs = append(errs, err)
			}
			return fmt.Sprintf("#!MISSING(%q)", name)
		}

	default:
		return errors.UnknownError.Wrap(err)
	}

	expandEnv(reflect.ValueOf(c), expand)
	if len(errs) > 0 {
		return errors.BadRequest.WithCauseAndFormat(errors.Join(errs...), "expand environment")
	}
	return nil
}

func (c *Config) SaveTo(file string) error {
	var format func(any) ([]byte, error)
	switch s := filepath.Ext(file); s {
	case ".toml", ".tml", ".ini":
		format = MarshalTOML
	case ".yaml", ".yml":
		format = yaml.Marshal
	case ".json":
		format = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	default:
		return errors.BadRequest.WithFormat("unknown file type %s", s)
	}

	b, err := c.Marshal(format)
	if err != nil {
		return err
	}

	return os.WriteFile(file, b, 0600)
}

func MarshalTOML(a any) ([]byte, error) {
	b := new(bytes.Buffer)
	e := toml.NewEncoder(b)
	err := e.Encode(a)
	return b.Bytes(), err
}

// Marshal encodes the configuration with kebab-case keys.
func (c *Config) Marshal(format func(any) ([]byte, error)) ([]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}

	var v any
	err = json.Unmarshal(b, &v)
	if err != nil {
		return nil, errors.EncodingError.Wrap(err)
	}

	v = remap(v, camel2kebab, float2int)
	return format(v)
}

func remap(v any, mapKey func(string) string, mapValue func(reflect.Value) any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		u := make([]any, rv.Len())
		for i := range u {
			u[i] = remap(rv.Index(i).Interface(), mapKey, mapValue)
		}
		return u

	case reflect.Map:
		u := make(map[string]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			u[mapKey(it.Key().String())] = remap(it.Value().Interface(), mapKey, mapValue)
		}
		return u

	default:
		if mapValue != nil {
			return mapValue(rv)
		}
		return v
	}
}

var reKebab = regexp.MustCompile(`-[a-z0-9]`)
var reCamel = regexp.MustCompile(`[a-z0-9][A-Z]+`)

func kebab2camel(s string) string {
	return reKebab.ReplaceAllStringFunc(s, func(s string) string {
		return strings.ToUpper(s[1:])
	})
}

func camel2kebab(s string) string {
	return strings.ToLower(reCamel.ReplaceAllStringFunc(s, func(s string) string {
		return s[:1] + "-" + s[1:]
	}))
}

func float2int(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		// Whole numbers are written as integers
		v := v.Float()
		if v == float64(int64(v)) {
			return int64(v)
		}
		return v
	case reflect.Invalid:
		return nil
	default:
		return v.Interface()
	}
}

func expandEnv(v reflect.Value, expand func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(os.Expand(v.String(), expand))
		}

	case reflect.Pointer, reflect.Interface:
		expandEnv(v.Elem(), expand)

	case reflect.Slice, reflect.Array:
		for i, n := 0, v.Len(); i < n; i++ {
			expandEnv(v.Index(i), expand)
		}

	case reflect.Map:
		if v.Type().Elem().Kind() != reflect.String {
			return
		}
		it := v.MapRange()
		for it.Next() {
			v.SetMapIndex(it.Key(), reflect.ValueOf(os.Expand(it.Value().String(), expand)).Convert(v.Type().Elem()))
		}

	case reflect.Struct:
		typ := v.Type()
		for i, n := 0, typ.NumField(); i < n; i++ {
			if typ.Field(i).IsExported() {
				expandEnv(v.Field(i), expand)
			}
		}
	}
}
