package drive

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mgsouza/driveqr/internal/app/models"
	"github.com/mgsouza/driveqr/internal/utils/errs"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/mgsouza/driveqr/internal/utils/validate"
	"go.uber.org/zap"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// AudioProxyPrefix is the route under which this service streams audio files.
const AudioProxyPrefix = "/api/v1/drive/audio/"

var fileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9-_]+)`),
	regexp.MustCompile(`/document/d/([a-zA-Z0-9-_]+)`),
	regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`),
	regexp.MustCompile(`/presentation/d/([a-zA-Z0-9-_]+)`),
	regexp.MustCompile(`/folders/([a-zA-Z0-9-_]+)`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9-_]+)`),
}

// fileIDFallback matches bare Drive-looking tokens when no known URL shape did.
var fileIDFallback = regexp.MustCompile(`([a-zA-Z0-9-_]{25,})`)

var titleSuffix = regexp.MustCompile(`(?i)\s*-\s*Google\s+(Drive|Docs|Sheets|Slides).*$`)
var titleBrand = regexp.MustCompile(`(?i)Google\s+(Drive|Docs|Sheets|Slides)`)

// Extractor implements the extraction side of the metadata contract: it
// parses the Drive file id out of a shared link, fetches the public pages
// that expose the file title and scrapes it out of the HTML.
type Extractor struct {
	client *http.Client
}

func CreateExtractor(client *http.Client) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 8 * time.Second}
	}
	return &Extractor{client: client}
}

// ParseFileID extracts the Drive file id from a shared link, or "" when the
// link carries none.
func ParseFileID(rawURL string) string {
	for _, pattern := range fileIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); len(match) > 1 {
			return match[1]
		}
	}
	if match := fileIDFallback.FindStringSubmatch(rawURL); len(match) > 1 {
		return match[1]
	}
	return ""
}

// DownloadURL builds the direct usercontent download link for a file id.
func DownloadURL(fileID string) string {
	return fmt.Sprintf("https://drive.usercontent.google.com/uc?id=%s&export=download", fileID)
}

// Extract resolves metadata for a Drive link. A link with no recognizable
// file id fails with errs.ErrInvalidFileID; a file whose title cannot be
// scraped still succeeds with a fallback title and the "fallback" method tag.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*models.DriveMetadata, error) {
	const funcName = "drive.Extractor.Extract"

	fileID := ParseFileID(rawURL)
	if fileID == "" {
		logger.Warn("no file id in link",
			zap.String("function", funcName),
			zap.String("url", rawURL),
		)
		return nil, errs.ErrInvalidFileID
	}

	for _, candidate := range candidateURLs(fileID) {
		title, err := e.scrapeTitle(ctx, candidate)
		if err != nil {
			logger.Debug("candidate page fetch failed",
				zap.String("function", funcName),
				zap.String("candidate", candidate),
				zap.Error(err),
			)
			continue
		}

		cleaned := cleanTitle(title)
		if len(cleaned) > 1 && !strings.Contains(strings.ToLower(cleaned), "sign in") {
			logger.Info("title extracted",
				zap.String("function", funcName),
				zap.String("file_id", fileID),
				zap.String("title", cleaned),
			)
			return buildMetadata(fileID, cleaned, "html-scraping", rawURL), nil
		}
	}

	fallback := fallbackTitle(fileID)
	logger.Info("falling back to generic title",
		zap.String("function", funcName),
		zap.String("file_id", fileID),
	)
	return buildMetadata(fileID, fallback, "fallback", rawURL), nil
}

func candidateURLs(fileID string) []string {
	return []string{
		fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID),
		fmt.Sprintf("https://drive.google.com/open?id=%s", fileID),
		fmt.Sprintf("https://docs.google.com/document/d/%s/edit", fileID),
		fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", fileID),
		fmt.Sprintf("https://docs.google.com/presentation/d/%s/edit", fileID),
	}
}

func (e *Extractor) scrapeTitle(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	candidates := []string{
		doc.Find("title").First().Text(),
		doc.Find(`meta[property="og:title"]`).AttrOr("content", ""),
		doc.Find(`meta[name="title"]`).AttrOr("content", ""),
	}
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", nil
}

func cleanTitle(title string) string {
	cleaned := titleSuffix.ReplaceAllString(title, "")
	cleaned = titleBrand.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimPrefix(strings.TrimSpace(cleaned), "- ")
	cleaned = strings.TrimSuffix(cleaned, " -")
	return strings.TrimSpace(cleaned)
}

func fallbackTitle(fileID string) string {
	shortID := fileID
	if len(fileID) > 12 {
		shortID = fileID[:8] + "..." + fileID[len(fileID)-4:]
	}
	return fmt.Sprintf("Google Drive file (%s)", shortID)
}

func buildMetadata(fileID, title, method, rawURL string) *models.DriveMetadata {
	metadata := &models.DriveMetadata{
		FileID: &fileID,
		Title:  title,
		Method: method,
	}

	if validate.HasAudioExtension(title, rawURL) {
		proxyPath := AudioProxyPrefix + fileID
		downloadURL := DownloadURL(fileID)
		mimeType := validate.AudioMimeType(title)
		metadata.Audio = models.DriveAudio{
			IsAudio:     true,
			ProxyPath:   &proxyPath,
			DownloadURL: &downloadURL,
			MimeType:    &mimeType,
		}
	}

	return metadata
}
