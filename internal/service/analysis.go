package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"designmentor.app/api/common/id"
	"designmentor.app/api/core/config"
	"designmentor.app/api/internal/analysis"
	"designmentor.app/api/internal/enrich"
	"designmentor.app/api/internal/lock"
	"designmentor.app/api/internal/model"
	"designmentor.app/api/internal/store"
)

// ErrAnalysisInFlight is returned when another analysis run currently
// holds the project's lock.
var ErrAnalysisInFlight = errors.New("analysis already in progress")

// AnalysisResult is the outcome of one analysis run.
type AnalysisResult struct {
	DesignVersion       int32              `json:"design_version"`
	Suggestions         []model.Suggestion `json:"suggestions"`
	MaturityScore       int32              `json:"maturity_score"`
	MaturityReason      string             `json:"maturity_reason"`
	NewlyAddressedCount int                `json:"newly_addressed_count"`
	NewSuggestionCount  int                `json:"new_suggestion_count"`
	SummaryMessage      string             `json:"summary_message"`
}

// Evolution is a project's analysis history.
type Evolution struct {
	ProjectID            int64                 `json:"project_id"`
	CurrentVersion       int32                 `json:"current_version"`
	CurrentMaturityScore int32                 `json:"current_maturity_score"`
	Versions             []model.DesignVersion `json:"versions"`
	ProgressSummary      string                `json:"progress_summary"`
}

type AnalysisService interface {
	Run(ctx context.Context, ownerID, projectID int64) (*AnalysisResult, error)
	Evolution(ctx context.Context, ownerID, projectID int64) (*Evolution, error)
	ListSuggestions(ctx context.Context, ownerID, projectID int64) ([]model.Suggestion, error)
	UpdateSuggestionStatus(ctx context.Context, ownerID, suggestionID int64, status model.SuggestionStatus) (*model.Suggestion, error)
}

type analysisService struct {
	projectStore    store.ProjectStore
	designStore     store.DesignStore
	suggestionStore store.SuggestionStore
	txRunner        TxRunner
	locker          lock.Locker
	generator       enrich.Generator // nil when enrichment is not configured
	enrichTimeout   time.Duration
}

func NewAnalysisService(
	projectStore store.ProjectStore,
	designStore store.DesignStore,
	suggestionStore store.SuggestionStore,
	txRunner TxRunner,
	locker lock.Locker,
	generator enrich.Generator,
	enrichCfg config.EnrichmentConfig,
) AnalysisService {
	return &analysisService{
		projectStore:    projectStore,
		designStore:     designStore,
		suggestionStore: suggestionStore,
		txRunner:        txRunner,
		locker:          locker,
		generator:       generator,
		enrichTimeout:   enrichCfg.Timeout,
	}
}

func (s *analysisService) Run(ctx context.Context, ownerID, projectID int64) (*AnalysisResult, error) {
	if _, err := s.ownedProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, projectID)
	if err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return nil, ErrAnalysisInFlight
		}
		return nil, fmt.Errorf("acquiring analysis lock: %w", err)
	}
	defer release()

	detail, err := s.designStore.GetByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading design: %w", err)
	}

	existing, err := s.suggestionStore.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading suggestions: %w", err)
	}

	maxVersion, err := s.designStore.MaxVersion(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading version history: %w", err)
	}
	newVersion := maxVersion + 1

	now := time.Now().UTC()
	matches := analysis.Match(detail.Content)
	maturity := analysis.Score(matches)
	decision := analysis.Reconcile(detail.Content, matches, existing, newVersion, now)

	slog.InfoContext(ctx, "analysis computed",
		"project_id", projectID,
		"design_version", newVersion,
		"maturity_score", maturity.Score,
		"addressed", len(decision.Addressed),
		"created", len(decision.Created),
	)

	// Enrichment runs after the reconciler has decided; it can only
	// decorate new suggestions, never change which ones exist.
	s.enrichDrafts(ctx, detail.Content, decision.Created)

	marked := 0
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		// Row-lock the project so concurrent runs serialize here even if
		// the redis lock expired mid-run.
		if _, err := stores.Projects().GetByIDForUpdate(ctx, projectID); err != nil {
			return fmt.Errorf("locking project: %w", err)
		}

		for _, addressed := range decision.Addressed {
			if _, err := stores.Suggestions().MarkAddressed(ctx, addressed.ID, newVersion, now); err != nil {
				// The row was manually resolved while this run was in
				// flight; that decision stands.
				if errors.Is(err, store.ErrNotFound) {
					slog.InfoContext(ctx, "suggestion resolved concurrently, skipping auto-address",
						"suggestion_id", addressed.ID,
						"rule_key", addressed.RuleKey,
					)
					continue
				}
				return fmt.Errorf("marking suggestion %d addressed: %w", addressed.ID, err)
			}
			marked++
		}

		for i := range decision.Created {
			decision.Created[i].ID = id.New()
			decision.Created[i].ProjectID = projectID
			if err := stores.Suggestions().Create(ctx, &decision.Created[i]); err != nil {
				return fmt.Errorf("creating suggestion %q: %w", decision.Created[i].RuleKey, err)
			}
		}

		openCount, err := stores.Suggestions().CountOpen(ctx, projectID)
		if err != nil {
			return fmt.Errorf("counting open suggestions: %w", err)
		}

		version := &model.DesignVersion{
			ID:              id.New(),
			ProjectID:       projectID,
			VersionNumber:   newVersion,
			Content:         detail.Content,
			MaturityScore:   maturity.Score,
			SuggestionCount: int32(openCount),
		}
		if err := stores.Designs().CreateVersion(ctx, version); err != nil {
			return fmt.Errorf("creating design version %d: %w", newVersion, err)
		}

		if err := stores.Designs().SetVersion(ctx, projectID, newVersion); err != nil {
			return fmt.Errorf("updating design version: %w", err)
		}

		return stores.Projects().UpdateAnalysis(ctx, projectID, model.ProjectStatusAnalyzed, maturity.Score, maturity.Reason)
	})
	if err != nil {
		return nil, err
	}

	suggestions, err := s.suggestionStore.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading suggestions: %w", err)
	}

	return &AnalysisResult{
		DesignVersion:       newVersion,
		Suggestions:         suggestions,
		MaturityScore:       maturity.Score,
		MaturityReason:      maturity.Reason,
		NewlyAddressedCount: marked,
		NewSuggestionCount:  len(decision.Created),
		SummaryMessage:      buildSummary(marked, len(decision.Created), openCount(suggestions), maturity.Score),
	}, nil
}

func (s *analysisService) Evolution(ctx context.Context, ownerID, projectID int64) (*Evolution, error) {
	project, err := s.ownedProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	versions, err := s.designStore.ListVersions(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading version history: %w", err)
	}

	var currentVersion int32
	detail, err := s.designStore.GetByProject(ctx, projectID)
	switch {
	case err == nil:
		currentVersion = detail.Version
	case errors.Is(err, store.ErrNotFound):
		// No design row yet; the timeline is empty anyway.
	default:
		return nil, fmt.Errorf("loading design: %w", err)
	}

	return &Evolution{
		ProjectID:            projectID,
		CurrentVersion:       currentVersion,
		CurrentMaturityScore: project.MaturityScore,
		Versions:             versions,
		ProgressSummary:      buildProgressSummary(versions),
	}, nil
}

func (s *analysisService) ListSuggestions(ctx context.Context, ownerID, projectID int64) ([]model.Suggestion, error) {
	if _, err := s.ownedProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.suggestionStore.ListByProject(ctx, projectID)
}

func (s *analysisService) UpdateSuggestionStatus(ctx context.Context, ownerID, suggestionID int64, status model.SuggestionStatus) (*model.Suggestion, error) {
	suggestion, err := s.suggestionStore.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedProject(ctx, ownerID, suggestion.ProjectID); err != nil {
		return nil, err
	}

	var addressedVersion *int32
	var addressedAt *time.Time
	if status == model.SuggestionStatusAddressed {
		detail, err := s.designStore.GetByProject(ctx, suggestion.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("loading design: %w", err)
		}
		now := time.Now().UTC()
		// Version 0 means never analyzed; there is no snapshot to pin.
		if detail.Version > 0 {
			addressedVersion = &detail.Version
		}
		addressedAt = &now
	}

	updated, err := s.suggestionStore.UpdateStatus(ctx, suggestionID, status, addressedVersion, addressedAt)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "suggestion status updated",
		"suggestion_id", suggestionID,
		"project_id", suggestion.ProjectID,
		"status", status,
	)

	return updated, nil
}

func (s *analysisService) ownedProject(ctx context.Context, ownerID, projectID int64) (*model.Project, error) {
	project, err := s.projectStore.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return project, nil
}

func (s *analysisService) enrichDrafts(ctx context.Context, content string, drafts []model.Suggestion) {
	if s.generator == nil || len(drafts) == 0 {
		return
	}

	timeout := s.enrichTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	enrichCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	explanations, err := s.generator.Explain(enrichCtx, content, drafts)
	if err != nil {
		slog.WarnContext(ctx, "enrichment skipped", "error", err)
		return
	}

	enriched := enrich.Apply(drafts, explanations)
	slog.InfoContext(ctx, "suggestions enriched", "enriched", enriched, "total", len(drafts))
}

func buildSummary(addressed, created, open int, maturity int32) string {
	var parts []string
	if addressed > 0 {
		parts = append(parts, fmt.Sprintf("%d suggestion(s) addressed!", addressed))
	}
	if created > 0 {
		parts = append(parts, fmt.Sprintf("Found %d new area(s) for improvement.", created))
	}
	switch {
	case open == 0:
		parts = append(parts, "All suggestions addressed!")
	case maturity == 5:
		parts = append(parts, fmt.Sprintf("Comprehensive design (maturity: %d/5)!", maturity))
	default:
		parts = append(parts, fmt.Sprintf("Maturity: %d/5. Keep improving!", maturity))
	}
	if len(parts) == 0 {
		return "Analysis complete."
	}
	return strings.Join(parts, " ")
}

func buildProgressSummary(versions []model.DesignVersion) string {
	switch len(versions) {
	case 0:
		return "No analysis history yet. Run your first analysis!"
	case 1:
		v := versions[0]
		return fmt.Sprintf("Version 1: %d suggestions, maturity %d/5", v.SuggestionCount, v.MaturityScore)
	}

	first := versions[0]
	last := versions[len(versions)-1]
	suggestionsDiff := first.SuggestionCount - last.SuggestionCount
	maturityDiff := last.MaturityScore - first.MaturityScore

	var parts []string
	if suggestionsDiff > 0 {
		parts = append(parts, fmt.Sprintf("Addressed %d suggestions", suggestionsDiff))
	}
	if maturityDiff > 0 {
		parts = append(parts, fmt.Sprintf("Improved maturity by %d points", maturityDiff))
	}

	if len(parts) > 0 {
		return fmt.Sprintf("Great progress! %s over %d versions.", strings.Join(parts, " and "), len(versions))
	}
	return fmt.Sprintf("Tracked %d versions. Keep improving your design!", len(versions))
}

func openCount(suggestions []model.Suggestion) int {
	count := 0
	for _, s := range suggestions {
		if s.Status == model.SuggestionStatusOpen {
			count++
		}
	}
	return count
}
