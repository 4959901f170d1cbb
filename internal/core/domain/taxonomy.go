package domain

import (
	"fmt"
	"strings"
)

// Taxonomy is the fixed keyword/domain lookup configuration injected
// into the pipeline components at construction. It is immutable
// configuration, not mutable state: components never write to it, and
// tests substitute alternate taxonomies freely.
//
// All matching is case-insensitive substring containment, mirroring
// the heuristic (non-NLP) design of the pipeline.
type Taxonomy struct {
	// HighCredibilityDomains are URL fragments marking high-trust
	// sources: government, academic, encyclopedic.
	HighCredibilityDomains []string `toml:"high_credibility_domains"`

	// MediumCredibilityDomains are URL fragments for established
	// press and reference sites.
	MediumCredibilityDomains []string `toml:"medium_credibility_domains"`

	// StopTerms are function words excluded from term extraction.
	StopTerms []string `toml:"stop_terms"`

	// TechnicalPatterns classify a term as technical.
	TechnicalPatterns []string `toml:"technical_patterns"`

	// BusinessPatterns classify a term as business.
	BusinessPatterns []string `toml:"business_patterns"`

	// LearningPatterns classify a term as learning.
	LearningPatterns []string `toml:"learning_patterns"`

	// IntroductionCues map a term to the introduction phase.
	IntroductionCues []string `toml:"introduction_cues"`

	// UnderstandingCues map a term to the understanding phase.
	UnderstandingCues []string `toml:"understanding_cues"`

	// ApplicationCues map a term to the application phase.
	ApplicationCues []string `toml:"application_cues"`
}

// DefaultTaxonomy returns the built-in lookup tables. The working
// corpus mixes Japanese and English, so both scripts appear.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		HighCredibilityDomains: []string{
			"wikipedia.org", ".gov", ".edu", ".go.jp", ".ac.jp",
			"scholar.google", "researchgate.net", "arxiv.org",
		},
		MediumCredibilityDomains: []string{
			"itmedia.co.jp", "nikkei.com", "diamond.jp", "forbes.com",
			"techcrunch.com", "qiita.com", "zenn.dev", "github.com",
		},
		StopTerms: []string{
			"これ", "それ", "あれ", "この", "その", "あの",
			"こと", "もの", "ため", "など", "ここ", "そこ", "あそこ",
			"the", "a", "an", "is", "are", "was", "were", "be", "been",
			"have", "has", "had", "do", "does", "did", "will", "would",
			"can", "could", "may", "might", "must", "shall", "should",
			"this", "that", "these", "those", "and", "or", "but", "not",
			"with", "from", "for", "you", "your",
		},
		TechnicalPatterns: []string{
			"ai", "api", "chatgpt", "gpt", "llm", "dx",
			"システム", "プログラム", "アルゴリズム", "データ",
			"ネットワーク", "セキュリティ", "クラウド",
			"system", "program", "algorithm", "data",
			"network", "security", "cloud", "software", "model",
		},
		BusinessPatterns: []string{
			"業務", "効率", "生産性", "コスト", "売上", "利益",
			"マーケティング", "営業", "管理", "戦略", "経営",
			"business", "cost", "revenue", "profit", "marketing",
			"sales", "management", "strategy", "productivity",
		},
		LearningPatterns: []string{
			"学習", "教育", "研修", "トレーニング", "スキル",
			"知識", "理解", "習得", "実践",
			"learning", "education", "training", "skill", "knowledge",
		},
		IntroductionCues: []string{
			"基本", "概要", "入門", "定義", "背景",
			"basic", "overview", "introduction", "definition", "background",
			"what", "concept",
		},
		UnderstandingCues: []string{
			"仕組み", "原理", "構造", "理論", "詳細",
			"mechanism", "principle", "structure", "theory", "detail",
			"how", "architecture", "process",
		},
		ApplicationCues: []string{
			"方法", "使い方", "活用", "実践", "事例", "応用",
			"method", "usage", "practice", "example", "case",
			"apply", "workflow", "hands",
		},
	}
}

// Validate checks the taxonomy for configuration errors. Empty
// classification tables are allowed (everything defaults to general);
// empty pattern entries are not, since "" matches every term.
func (t Taxonomy) Validate() error {
	tables := map[string][]string{
		"high_credibility_domains":   t.HighCredibilityDomains,
		"medium_credibility_domains": t.MediumCredibilityDomains,
		"stop_terms":                 t.StopTerms,
		"technical_patterns":         t.TechnicalPatterns,
		"business_patterns":          t.BusinessPatterns,
		"learning_patterns":          t.LearningPatterns,
		"introduction_cues":          t.IntroductionCues,
		"understanding_cues":         t.UnderstandingCues,
		"application_cues":           t.ApplicationCues,
	}
	for name, entries := range tables {
		for _, entry := range entries {
			if strings.TrimSpace(entry) == "" {
				return fmt.Errorf("%w: %s contains an empty entry", ErrInvalidConfig, name)
			}
		}
	}
	return nil
}

// Credibility judges a URL against the credibility domain tables.
func (t Taxonomy) Credibility(url string) Credibility {
	if url == "" {
		return CredibilityUnknown
	}
	lower := strings.ToLower(url)
	for _, d := range t.HighCredibilityDomains {
		if strings.Contains(lower, strings.ToLower(d)) {
			return CredibilityHigh
		}
	}
	for _, d := range t.MediumCredibilityDomains {
		if strings.Contains(lower, strings.ToLower(d)) {
			return CredibilityMedium
		}
	}
	return CredibilityLow
}

// IsStopTerm reports whether the term is in the stop-term set.
func (t Taxonomy) IsStopTerm(term string) bool {
	lower := strings.ToLower(term)
	for _, s := range t.StopTerms {
		if lower == strings.ToLower(s) {
			return true
		}
	}
	return false
}

// Categorize classifies a term by testing the pattern tables in
// priority order technical, business, learning. First match wins;
// terms matching nothing are general. Total function: every term
// receives exactly one category.
func (t Taxonomy) Categorize(term string) TermCategory {
	lower := strings.ToLower(term)
	if matchAny(lower, t.TechnicalPatterns) {
		return CategoryTechnical
	}
	if matchAny(lower, t.BusinessPatterns) {
		return CategoryBusiness
	}
	if matchAny(lower, t.LearningPatterns) {
		return CategoryLearning
	}
	return CategoryGeneral
}

// Phase maps a term to a learning phase via the cue tables, checked
// in priority order introduction, application, understanding. Terms
// matching no cue are PhaseNone.
func (t Taxonomy) Phase(term string) LearningPhase {
	lower := strings.ToLower(term)
	if matchAny(lower, t.IntroductionCues) {
		return PhaseIntroduction
	}
	if matchAny(lower, t.ApplicationCues) {
		return PhaseApplication
	}
	if matchAny(lower, t.UnderstandingCues) {
		return PhaseUnderstanding
	}
	return PhaseNone
}

func matchAny(lower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
