package classifiers

import (
	"strings"

	"perf-analytics/internal/models"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=classifier.go -destination=./mocks/classifier_mock.go -package=mocks
type Classifier interface {
	// DeviceMode classifies a user agent. An absent user agent counts as mobile.
	DeviceMode(userAgent *string) models.DeviceMode
	// NormalizeURL keeps scheme, host and path as written and drops query and fragment.
	NormalizeURL(raw string) string
	// TaskKey builds the natural key of the audit task a page view asks for.
	TaskKey(pageView *models.PageView) models.Task
}

type classifier struct{}

func NewClassifier() Classifier {
	return &classifier{}
}

func (c *classifier) DeviceMode(userAgent *string) models.DeviceMode {
	if userAgent == nil {
		return models.ModeMobile
	}
	if useragent.Parse(*userAgent).Mobile {
		return models.ModeMobile
	}
	return models.ModeDesktop
}

func (c *classifier) NormalizeURL(raw string) string {
	// no decoding or re-escaping: keys must match tasks queued by earlier runs
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return raw
	}

	authority, path := rest, ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority, path = rest[:i], rest[i:]
	}
	// ;params on the last segment are not part of the path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		if j := strings.IndexByte(path[i:], ';'); j >= 0 {
			path = path[:i+j]
		}
	}
	return strings.ToLower(scheme) + "://" + authority + path
}

func (c *classifier) TaskKey(pageView *models.PageView) models.Task {
	return models.Task{
		RequestedURL: c.NormalizeURL(pageView.CurrentHref),
		Mode:         c.DeviceMode(pageView.UserAgent),
	}
}
