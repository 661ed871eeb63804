package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"

	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// bindRequest fills req from the http request: json body for non-GET methods
// with a json content type, then path and query parameters by struct tag.
func bindRequest(ctx context.Context, httpReq *http.Request, req any) error {
	if httpReq.Method != http.MethodGet {
		contentType, _, _ := mime.ParseMediaType(httpReq.Header.Get("Content-Type"))
		if contentType == "application/json" {
			if err := json.NewDecoder(httpReq.Body).Decode(req); err != nil &&
				!errors.Is(err, io.EOF) {
				return errorx.New(errorx.Validation, "Cannot parse the request body")
			}
		}
	}

	if err := bindParams(ctx, httpReq, req); err != nil {
		return err
	}

	return nil
}

func bindParams(ctx context.Context, httpReq *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}

	pathParams := xcontext.PathParams(ctx)
	query := httpReq.URL.Query()

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		var raw string
		if name, ok := field.Tag.Lookup("path"); ok {
			raw = pathParams[name]
			if raw == "" {
				return errorx.New(errorx.Validation, "Missing path parameter %s", name)
			}
		} else if name, ok := field.Tag.Lookup("query"); ok {
			raw = query.Get(name)
			if raw == "" {
				continue
			}
		} else {
			continue
		}

		if err := setField(v.Field(i), raw); err != nil {
			return errorx.New(errorx.Validation, "Invalid value %s of parameter %s",
				raw, field.Name)
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return errors.New("unsupported field kind " + field.Kind().String())
	}

	return nil
}
