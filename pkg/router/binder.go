package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/userhub/backend/pkg/errorx"
	"github.com/userhub/backend/pkg/reflectutil"
)

// bindRequest fills req from the JSON body (for body-carrying methods), then
// overlays query parameters and path wildcards. Parameter names come from
// the json tag, falling back to the snake-cased field name. Path values win
// over everything.
func bindRequest(r *http.Request, req any) error {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			return errorx.New(errorx.BadRequest, "Cannot parse the request body")
		}
	}

	v := reflect.ValueOf(req).Elem()
	t := v.Type()
	query := r.URL.Query()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" {
			name = reflectutil.ToSnakeCase(field.Name)
		}
		if name == "-" {
			continue
		}

		if value := r.PathValue(name); value != "" {
			if err := setField(v.Field(i), value); err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value for %s", name)
			}
			continue
		}

		if r.Method == http.MethodGet && query.Has(name) {
			if err := setField(v.Field(i), query.Get(name)); err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value for %s", name)
			}
		}
	}

	return nil
}

func setField(v reflect.Value, raw string) error {
	if v.Kind() == reflect.Pointer {
		p := reflect.New(v.Type().Elem())
		if err := setField(p.Elem(), raw); err != nil {
			return err
		}
		v.Set(p)
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v.OverflowInt(n) {
			return errors.New("invalid integer")
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v.OverflowUint(n) {
			return errors.New("invalid unsigned integer")
		}
		v.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("invalid boolean")
		}
		v.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || v.OverflowFloat(f) {
			return errors.New("invalid float")
		}
		v.SetFloat(f)
	default:
		return errors.New("unsupported field kind " + v.Kind().String())
	}

	return nil
}
