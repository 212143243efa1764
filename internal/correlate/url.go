package correlate

import (
	"fmt"
	"strings"

	"github.com/coolify-tools/coolify-ctl/internal/model"
)

// ResourceURL returns the canonical dashboard page for a resource, or ""
// when any of the identifying UUIDs is missing. Partial URLs are never
// fabricated. Trailing slashes on the instance URL are stripped first.
func ResourceURL(instanceURL, projectUUID, environmentUUID, resourceUUID string, typ model.ResourceType) string {
	base := trimInstanceURL(instanceURL)
	if base == "" || projectUUID == "" || environmentUUID == "" || resourceUUID == "" {
		return ""
	}
	return fmt.Sprintf("%s/project/%s/environment/%s/%s/%s", base, projectUUID, environmentUUID, typ, resourceUUID)
}

// EnvironmentURL returns the dashboard page for an environment under the
// same all-or-nothing presence rule.
func EnvironmentURL(instanceURL, projectUUID, environmentUUID string) string {
	base := trimInstanceURL(instanceURL)
	if base == "" || projectUUID == "" || environmentUUID == "" {
		return ""
	}
	return fmt.Sprintf("%s/project/%s/environment/%s", base, projectUUID, environmentUUID)
}

// LogsURL returns the console-logs page of an application.
func LogsURL(instanceURL, projectUUID, environmentUUID, applicationUUID string) string {
	u := ResourceURL(instanceURL, projectUUID, environmentUUID, applicationUUID, model.ResourceTypeApplication)
	if u == "" {
		return ""
	}
	return u + "/logs"
}

// DeploymentURL returns the detail page of one deployment of an application.
func DeploymentURL(instanceURL, projectUUID, environmentUUID, applicationUUID, deploymentUUID string) string {
	u := ResourceURL(instanceURL, projectUUID, environmentUUID, applicationUUID, model.ResourceTypeApplication)
	if u == "" || deploymentUUID == "" {
		return ""
	}
	return u + "/deployment/" + deploymentUUID
}

// ResolveResourceURL derives the canonical page for a unified resource by
// resolving its environment through the lookup.
func ResolveResourceURL(instanceURL string, it model.ResourceItem, lk Lookups) string {
	env, ok := lk.Env[it.EnvironmentID]
	if !ok {
		return ""
	}
	return ResourceURL(instanceURL, env.ProjectUUID, env.UUID, it.UUID, it.Type)
}

// ResolveLogsURL is ResolveResourceURL's counterpart for console logs; only
// applications have a logs page.
func ResolveLogsURL(instanceURL string, it model.ResourceItem, lk Lookups) string {
	if it.Type != model.ResourceTypeApplication {
		return ""
	}
	env, ok := lk.Env[it.EnvironmentID]
	if !ok {
		return ""
	}
	return LogsURL(instanceURL, env.ProjectUUID, env.UUID, it.UUID)
}

func trimInstanceURL(instanceURL string) string {
	return strings.TrimRight(strings.TrimSpace(instanceURL), "/")
}
