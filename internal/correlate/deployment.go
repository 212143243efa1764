package correlate

import (
	"bytes"
	"encoding/json"

	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// listEnvelope covers the wrapper objects the API wraps list responses in.
type listEnvelope struct {
	Rows        json.RawMessage `json:"rows"`
	Data        json.RawMessage `json:"data"`
	Deployments json.RawMessage `json:"deployments"`
}

// NormalizeList flattens the handful of response shapes the API uses for
// "list of records": a bare array, an object exposing the array under rows,
// data or deployments, or a doubly-nested data.rows / data.data. Shapes are
// tried in that order and the first match wins. Malformed or unrecognized
// input degrades to an empty slice; this function never errors.
func NormalizeList[T any](raw json.RawMessage) []T {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}
	}
	if list, ok := tryList[T](raw); ok {
		return list
	}
	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return []T{}
	}
	for _, nested := range []json.RawMessage{env.Rows, env.Data, env.Deployments} {
		if list, ok := tryList[T](nested); ok {
			return list
		}
	}
	// data may itself be an envelope: {data: {rows: [...]}} or {data: {data: [...]}}
	if len(env.Data) > 0 {
		var inner listEnvelope
		if err := json.Unmarshal(env.Data, &inner); err == nil {
			for _, nested := range []json.RawMessage{inner.Rows, inner.Data} {
				if list, ok := tryList[T](nested); ok {
					return list
				}
			}
		}
	}
	return []T{}
}

func tryList[T any](raw json.RawMessage) ([]T, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return nil, false
	}
	return list, true
}

// BuildAppEnvMap indexes applications by every identifier flavor they carry
// (numeric id and uuid), mapping each to the application's environment id.
// Deployment records reference their application inconsistently, so the map
// is keyed redundantly the same way the environment lookups are.
func BuildAppEnvMap(apps []model.Application) map[string]string {
	m := make(map[string]string, len(apps)*2)
	for _, a := range apps {
		env := FirstID(a.EnvironmentID, a.EnvironmentUUID)
		if env == "" {
			continue
		}
		for _, k := range []string{NormalizeID(a.ID), NormalizeID(a.UUID)} {
			if k != "" {
				m[k] = env
			}
		}
	}
	return m
}

// DeploymentEnvironment attributes a deployment to an environment. The
// deployments endpoint omits environment linkage for some call shapes, so
// resolution goes through the application map first (keyed by
// source_app_uuid, then application_uuid, then application_id) and only then
// falls back to the record's own environment fields. Returns "" when nothing
// resolves.
func DeploymentEnvironment(d model.Deployment, appEnv map[string]string) string {
	if key := FirstID(d.SourceAppUUID, d.ApplicationUUID, d.ApplicationID); key != "" {
		if env, ok := appEnv[key]; ok {
			return env
		}
	}
	return FirstID(d.EnvironmentID, d.EnvironmentUUID)
}

// DeploymentKey is the stable identity of a deployment record:
// deployment_uuid, falling back to id.
func DeploymentKey(d model.Deployment) string {
	return FirstID(d.DeploymentUUID, d.ID)
}
