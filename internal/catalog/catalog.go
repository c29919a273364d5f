// Package catalog holds the static rule table the analysis engine runs
// against. The table is process-wide configuration: loaded once, never
// mutated at runtime.
package catalog

import "designmentor.app/api/internal/model"

// Keyword lists shared between rules and maturity concepts.
var (
	apiKeywords           = []string{"api", "rest", "http", "endpoint", "graphql", "grpc", "request", "response", "gateway", "controller"}
	authKeywords          = []string{"auth", "authentication", "authorization", "jwt", "oauth", "login", "signup", "session", "cookie", "token", "rbac"}
	dbKeywords            = []string{"database", "postgres", "mysql", "nosql", "mongodb", "dynamodb", "cassandra", "sql", "storage", "persist"}
	cacheKeywords         = []string{"cache", "redis", "memcached", "in-memory", "lru", "ttl", "hot data"}
	scalingKeywords       = []string{"scale", "scaling", "horizontal", "load balancer", "replica", "multiple instances", "autoscale", "hpa"}
	realtimeKeywords      = []string{"websocket", "websockets", "socket.io", "realtime", "real time", "long polling", "server sent events", "grpc stream", "pub/sub", "presence", "live updates"}
	queueKeywords         = []string{"queue", "kafka", "rabbitmq", "pubsub", "asynchronous", "async", "worker", "background job", "event driven"}
	indexingKeywords      = []string{"index", "indexing", "query optimization", "composite index", "search index"}
	observabilityKeywords = []string{"logging", "monitoring", "metrics", "tracing", "prometheus", "grafana", "alerts", "observability"}
	reliabilityKeywords   = []string{"retry", "timeout", "circuit breaker", "fallback", "graceful failure", "idempotent"}
	safetyKeywords        = []string{"rate limit", "throttle", "token bucket", "abuse", "spam prevention"}
	storageKeywords       = []string{"s3", "object storage", "blob storage", "cdn", "file upload", "media storage", "file storage"}
	backupKeywords        = []string{"backup", "restore", "replication", "disaster recovery"}
	versioningKeywords    = []string{"versioning", "v1", "v2", "backward compatibility"}
	shardingKeywords      = []string{"shard", "sharding", "partition", "data partitioning", "consistent hashing"}
	validationKeywords    = []string{"validation", "sanitize", "sanitization", "input validation", "schema validation", "cors"}
)

// Rule is one concept bucket: when none of its keywords appear in a
// design, the bucket's suggestion applies.
type Rule struct {
	Key         string
	Title       string
	Description string
	Category    model.SuggestionCategory
	Severity    model.SuggestionSeverity
	Keywords    []string
}

var rules = []Rule{
	{
		Key:   "caching",
		Title: "Consider Adding Caching Layer",
		Description: "Your design doesn't mention caching. Consider adding a caching layer " +
			"(Redis, Memcached, or CDN) to improve response times and reduce database load. " +
			"Cache frequently accessed data like user sessions, API responses, or computed results.",
		Category: model.CategoryCaching,
		Severity: model.SeverityWarning,
		Keywords: cacheKeywords,
	},
	{
		Key:   "scaling",
		Title: "Add Horizontal Scaling Strategy",
		Description: "Your design doesn't mention horizontal scaling. Consider how your system will " +
			"handle increased load. Add load balancers and design services to be stateless " +
			"so they can run as multiple instances. Consider container orchestration (K8s) for auto-scaling.",
		Category: model.CategoryScalability,
		Severity: model.SeverityCritical,
		Keywords: scalingKeywords,
	},
	{
		Key:   "rate-limiting",
		Title: "Implement Rate Limiting",
		Description: "Your design doesn't mention rate limiting. Protect your APIs from abuse and " +
			"ensure fair usage by implementing rate limiting. Consider using an API gateway " +
			"or middleware to enforce request quotas per user/IP.",
		Category: model.CategorySecurity,
		Severity: model.SeverityWarning,
		Keywords: safetyKeywords,
	},
	{
		Key:   "indexing",
		Title: "Define Database Indexing Strategy",
		Description: "Your design doesn't mention database indexing. Proper indexes are crucial for " +
			"query performance. Identify frequently queried fields and create appropriate " +
			"indexes. Consider composite indexes for queries with multiple conditions.",
		Category: model.CategoryDatabase,
		Severity: model.SeverityWarning,
		Keywords: indexingKeywords,
	},
	{
		Key:   "auth",
		Title: "Define Authentication & Authorization",
		Description: "Your design doesn't clearly mention authentication or authorization. " +
			"Define how users will authenticate (JWT, OAuth, sessions) and how you'll " +
			"handle authorization (RBAC, ABAC). This is critical for security.",
		Category: model.CategorySecurity,
		Severity: model.SeverityCritical,
		Keywords: authKeywords,
	},
	{
		Key:   "resilience",
		Title: "Add Error Handling Strategy",
		Description: "Your design doesn't mention error handling patterns. Consider implementing " +
			"retry logic with exponential backoff, circuit breakers for external services, " +
			"and graceful degradation when dependencies fail.",
		Category: model.CategoryReliability,
		Severity: model.SeverityWarning,
		Keywords: reliabilityKeywords,
	},
	{
		Key:   "observability",
		Title: "Implement Observability",
		Description: "Your design doesn't mention monitoring or logging. Add structured logging, " +
			"metrics collection (Prometheus), and distributed tracing for debugging. " +
			"Set up alerting for critical failures and performance degradation.",
		Category: model.CategoryReliability,
		Severity: model.SeverityInfo,
		Keywords: observabilityKeywords,
	},
	{
		Key:   "backup",
		Title: "Plan for Data Backup & Recovery",
		Description: "Your design doesn't mention backup or disaster recovery. Define your backup " +
			"strategy (frequency, retention), replication for high availability, and " +
			"document recovery procedures. Consider RPO and RTO requirements.",
		Category: model.CategoryReliability,
		Severity: model.SeverityWarning,
		Keywords: backupKeywords,
	},
	{
		Key:   "api-versioning",
		Title: "Consider API Versioning Strategy",
		Description: "Your design doesn't mention API versioning. Plan how you'll handle breaking " +
			"changes. Use URL versioning (/api/v1) or header-based versioning. Define " +
			"deprecation policies for old versions.",
		Category: model.CategoryAPIDesign,
		Severity: model.SeverityInfo,
		Keywords: versioningKeywords,
	},
	{
		Key:   "sharding",
		Title: "Consider Database Partitioning",
		Description: "For large-scale systems, consider database sharding or partitioning strategies. " +
			"This helps distribute data across multiple nodes and improves query performance. " +
			"Choose a sharding key carefully based on your access patterns.",
		Category: model.CategoryScalability,
		Severity: model.SeverityInfo,
		Keywords: shardingKeywords,
	},
	{
		Key:   "async-messaging",
		Title: "Consider Asynchronous Processing",
		Description: "Your design doesn't mention message queues or async processing. For operations " +
			"that don't need immediate response (emails, notifications, heavy processing), " +
			"consider using message queues (Kafka, RabbitMQ, SQS) to decouple services.",
		Category: model.CategoryPerformance,
		Severity: model.SeverityInfo,
		Keywords: queueKeywords,
	},
	{
		Key:   "input-validation",
		Title: "Add Input Validation",
		Description: "Your design doesn't explicitly mention input validation. Validate all user " +
			"inputs at API boundaries to prevent injection attacks and ensure data integrity. " +
			"Use schema validation libraries and sanitize inputs before processing.",
		Category: model.CategorySecurity,
		Severity: model.SeverityWarning,
		Keywords: validationKeywords,
	},
}

// Rules returns the concept buckets in catalog order.
func Rules() []Rule {
	return rules
}

// ByKey returns the rule for a bucket key, or false when the key is
// unknown (e.g. a suggestion created by an older catalog revision).
func ByKey(key string) (Rule, bool) {
	for _, r := range rules {
		if r.Key == key {
			return r, true
		}
	}
	return Rule{}, false
}

// MaturityConcept is one of the five scoring buckets. Each concept
// present in a design contributes one point to the maturity score.
type MaturityConcept struct {
	Name     string
	Label    string
	Keywords []string
}

var maturityConcepts = []MaturityConcept{
	{Name: "API", Label: "API/Communication layer defined", Keywords: concat(apiKeywords, realtimeKeywords)},
	{Name: "DATABASE", Label: "Storage strategy present", Keywords: concat(dbKeywords, storageKeywords)},
	{Name: "CACHE", Label: "Caching layer considered", Keywords: cacheKeywords},
	{Name: "SCALING", Label: "Scaling strategy defined", Keywords: concat(scalingKeywords, shardingKeywords)},
	{Name: "SAFETY", Label: "Safety & Integrity measures", Keywords: concat(authKeywords, safetyKeywords, reliabilityKeywords, validationKeywords)},
}

// MaturityConcepts returns the scoring buckets in fixed order.
func MaturityConcepts() []MaturityConcept {
	return maturityConcepts
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
