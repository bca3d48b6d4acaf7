package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/model"
)

// EvaluateRequest is the JSON body of POST /$evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
	// Resource is the input resource, optional.
	Resource json.RawMessage `json:"resource,omitempty"`
	// Variables are made available as %name.
	Variables map[string]json.RawMessage `json:"variables,omitempty"`
	// Release overrides the FHIR release of the server, e.g. R5.
	Release string `json:"release,omitempty"`
	// Strict overrides the strict mode of the server.
	Strict *bool `json:"strict,omitempty"`
}

// EvaluateResponse lists the result items together with their types.
type EvaluateResponse struct {
	Expression string        `json:"expression"`
	Result     []ResultItem  `json:"result"`
	Trace      []TraceOutput `json:"trace,omitempty"`
}

type ResultItem struct {
	Type  string         `json:"type"`
	Value fhirpath.Value `json:"value"`
}

type TraceOutput struct {
	Name  string       `json:"name"`
	Value []ResultItem `json:"value"`
}

// ResultItems pairs every item of v with its type name.
func ResultItems(v fhirpath.Value) []ResultItem {
	items := []ResultItem{}
	for _, item := range fhirpath.Items(v) {
		items = append(items, ResultItem{Type: fhirpath.TypeOf(item).String(), Value: item})
	}
	return items
}

// bindRequest reads the request from the query (GET) or the JSON body.
func bindRequest(c echo.Context) (EvaluateRequest, error) {
	var req EvaluateRequest
	if c.Request().Method == http.MethodGet {
		req.Expression = c.QueryParam("expression")
		req.Release = c.QueryParam("release")
	} else if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return req, &requestError{code: "structure", msg: fmt.Sprintf("invalid request body: %v", err)}
	}
	if strings.TrimSpace(req.Expression) == "" {
		return req, &requestError{code: "required", msg: "expression is required"}
	}
	return req, nil
}

// evaluationContext clones the template and applies the request.
func (s *Server) evaluationContext(req EvaluateRequest) (*fhirpath.EvaluationContext, error) {
	ec := fhirpath.NewEvaluationContext()
	if s.Template != nil {
		ec = s.Template.Clone()
	}
	var release model.Release = model.R4{}
	if r, ok := ec.Model().(model.Release); ok {
		release = r
	}
	if req.Release != "" {
		r, err := model.ParseRelease(req.Release)
		if err != nil {
			return nil, &requestError{code: "value", msg: err.Error()}
		}
		release = r
		fhirpath.WithModel(r)(ec)
	}
	if req.Strict != nil {
		ec.SetStrictMode(*req.Strict)
	}
	if len(req.Resource) > 0 && string(req.Resource) != "null" {
		r, err := model.ParseResource(req.Resource)
		if err != nil {
			return nil, &requestError{code: "invalid", msg: fmt.Sprintf("resource: %v", err)}
		}
		if err := ec.AddResource(r.WithRelease(release)); err != nil {
			return nil, &requestError{code: "invalid", msg: err.Error()}
		}
	}
	for name, raw := range req.Variables {
		v, err := model.ValueFromJSON(raw)
		if err != nil {
			return nil, &requestError{code: "value", msg: fmt.Sprintf("variable %s: %v", name, err)}
		}
		ec.SetVariable(name, v)
	}
	return ec, nil
}

func (s *Server) handleEvaluate(c echo.Context) error {
	req, err := bindRequest(c)
	if err != nil {
		return s.returnErr(c, err, req.Expression)
	}
	expr, err := s.parse(req.Expression)
	if err != nil {
		return s.returnErr(c, err, req.Expression)
	}
	ec, err := s.evaluationContext(req)
	if err != nil {
		return s.returnErr(c, err, req.Expression)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.timeout())
	defer cancel()

	result, err := fhirpath.Evaluate(ctx, ec, expr)
	if err != nil {
		return s.returnErr(c, err, req.Expression)
	}

	resp := EvaluateResponse{
		Expression: expr.String(),
		Result:     ResultItems(result),
	}
	for _, trace := range ec.TraceOutputs() {
		resp.Trace = append(resp.Trace, TraceOutput{Name: trace.Name, Value: ResultItems(trace.Value)})
	}
	s.Logger.Debug().Str("expression", req.Expression).Int("count", len(resp.Result)).Msg("evaluated")
	return c.JSON(http.StatusOK, resp)
}
