package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// Responses always use the fixed envelope: {"result": true, ...} on success,
// {"result": false, "error_type": ..., "error_message": ...} on failure.

func newErrorResponse(err error) (int, map[string]any) {
	errx := errorx.Unknown
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	return errx.Code.HTTPStatus(), map[string]any{
		"result":        false,
		"error_type":    errx.Code.ErrorType(),
		"error_message": errx.Message,
	}
}

func writeResponse(ctx context.Context, w http.ResponseWriter, method string, resp any, err error) {
	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		status, body := newErrorResponse(err)
		w.WriteHeader(status)
		if werr := WriteJson(w, body); werr != nil {
			xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
		}
		return
	}

	body := map[string]any{"result": true}
	if resp != nil {
		b, merr := json.Marshal(resp)
		if merr == nil {
			merr = json.Unmarshal(b, &body)
		}
		if merr != nil {
			xcontext.Logger(ctx).Errorf("Cannot marshal the response: %v", merr)
			status, errBody := newErrorResponse(errorx.Unknown)
			w.WriteHeader(status)
			if werr := WriteJson(w, errBody); werr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
			}
			return
		}
	}

	if method == http.MethodPost {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if werr := WriteJson(w, body); werr != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", werr)
	}
}

func WriteJson(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
