package cloud

// Standard tag/label keys attached to every resource that supports
// them. GCP label keys cannot contain slashes, so the keys stay flat.
const (
	TagTenant    = "skybox-tenant"
	TagManagedBy = "skybox-managed-by"

	ManagedBy = "skybox"
)

// BaseTags returns the standard tag set for a tenant, merged with any
// user-configured extra tags. User tags never override the standard
// keys.
func BaseTags(tenant string, extra map[string]string) map[string]string {
	tags := make(map[string]string, len(extra)+2)
	for k, v := range extra {
		tags[k] = v
	}
	tags[TagTenant] = tenant
	tags[TagManagedBy] = ManagedBy
	return tags
}
