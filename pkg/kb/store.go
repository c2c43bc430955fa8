package kb

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"helpdesk-assistant-be/pkg/lexical"
)

// FAQEntry is one row of the FAQ reference table. Tokens is computed
// once at load time so query-time matching never re-tokenizes entries.
type FAQEntry struct {
	Question string
	Answer   string
	Tokens   lexical.TokenSet
}

// OwnerEntry is one row of the screen-to-owner directory. Load order is
// significant: lookups scan in file order and the first match wins.
type OwnerEntry struct {
	Screen string
	Owner  string
	Email  string
	Phone  string
}

// Store loads the two reference tables lazily on first access and caches
// them for the process lifetime. A missing or corrupt file degrades to an
// empty table; picking up file changes requires a new process.
type Store struct {
	faqPath   string
	ownerPath string
	logger    *log.Logger

	faqOnce   sync.Once
	faq       []FAQEntry
	ownerOnce sync.Once
	owners    []OwnerEntry
}

func NewStore(kbDefaultDir, kbDataDir string, logger *log.Logger) *Store {
	return &Store{
		faqPath:   filepath.Join(kbDefaultDir, "faq_data.csv"),
		ownerPath: filepath.Join(kbDataDir, "owners.csv"),
		logger:    logger,
	}
}

// FAQ returns the cached FAQ table, loading it on first call.
func (s *Store) FAQ() []FAQEntry {
	s.faqOnce.Do(func() {
		rows, err := readCSV(s.faqPath)
		if err != nil {
			s.logger.Printf("[WARN] FAQ table unavailable (%s): %v", s.faqPath, err)
			return
		}
		for _, row := range rows {
			question, okQ := row["question"]
			answer, okA := row["answer"]
			if !okQ || !okA {
				continue
			}
			s.faq = append(s.faq, FAQEntry{
				Question: question,
				Answer:   answer,
				Tokens:   lexical.Tokenize(question),
			})
		}
		s.logger.Printf("[INFO] Loaded %d FAQ entries", len(s.faq))
	})
	return s.faq
}

// Owners returns the cached directory table, loading it on first call.
func (s *Store) Owners() []OwnerEntry {
	s.ownerOnce.Do(func() {
		rows, err := readCSV(s.ownerPath)
		if err != nil {
			s.logger.Printf("[WARN] Owner table unavailable (%s): %v", s.ownerPath, err)
			return
		}
		for _, row := range rows {
			screen, okS := row["screen"]
			owner, okO := row["owner"]
			if !okS || !okO {
				continue
			}
			s.owners = append(s.owners, OwnerEntry{
				Screen: screen,
				Owner:  owner,
				Email:  row["email"],
				Phone:  row["phone"],
			})
		}
		s.logger.Printf("[INFO] Loaded %d owner entries", len(s.owners))
	})
	return s.owners
}

// FindSimilarFAQ scores every FAQ entry against the question by Jaccard
// overlap and returns the best entry, or nil when nothing strictly
// exceeds the match threshold.
func (s *Store) FindSimilarFAQ(question string) *FAQEntry {
	entries := s.FAQ()
	if len(entries) == 0 {
		return nil
	}

	candidates := make([]lexical.TokenSet, len(entries))
	for i, e := range entries {
		candidates[i] = e.Tokens
	}

	idx := lexical.BestMatch(lexical.Tokenize(question), candidates)
	if idx < 0 {
		return nil
	}
	return &entries[idx]
}

// readCSV reads a header-keyed CSV file into row maps, tolerating a
// UTF-8 BOM and ragged rows.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
