package stores

import (
	"strconv"

	"perf-analytics/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// pageViewDocument is the subset of a pv_log document the jobs read.
type pageViewDocument struct {
	ID   bson.RawValue `bson:"_id"`
	UA   *string       `bson:"ua"`
	Data struct {
		CurrentHref string `bson:"currenthref"`
	} `bson:"data"`
}

func (d *pageViewDocument) toModel() *models.PageView {
	return &models.PageView{
		ID:          idString(d.ID),
		UserAgent:   d.UA,
		CurrentHref: d.Data.CurrentHref,
	}
}

// timingDocument is the subset of a perf_afterOL / perf_OL document the jobs read.
type timingDocument struct {
	ID  bson.RawValue `bson:"_id"`
	UA  *string       `bson:"ua"`
	FMP bson.RawValue `bson:"fmp"`
	TTI bson.RawValue `bson:"tti"`
	FCP bson.RawValue `bson:"fcp"`
}

func (d *timingDocument) toModel() *models.TimingRecord {
	return &models.TimingRecord{
		ID:        idString(d.ID),
		UserAgent: d.UA,
		FMP:       metricOf(d.FMP),
		TTI:       metricOf(d.TTI),
		FCP:       metricOf(d.FCP),
	}
}

// auditReportDocument is the subset of a lighthouse result the jobs read.
type auditReportDocument struct {
	ID             bson.RawValue `bson:"_id"`
	RequestedURL   string        `bson:"requestedUrl"`
	ConfigSettings struct {
		EmulatedFormFactor string `bson:"emulatedFormFactor"`
	} `bson:"configSettings"`
	Audits map[string]auditDocument `bson:"audits"`
}

type auditDocument struct {
	RawValue     bson.RawValue `bson:"rawValue"`
	NumericValue bson.RawValue `bson:"numericValue"`
}

func (d *auditReportDocument) toModel() *models.AuditReport {
	audits := make(map[string]models.MetricValue, len(d.Audits))
	for name, audit := range d.Audits {
		value := metricOf(audit.RawValue)
		// newer lighthouse versions moved the number to numericValue
		if !value.Present && value.Reason == models.ReasonMissing {
			value = metricOf(audit.NumericValue)
		}
		audits[name] = value
	}
	return &models.AuditReport{
		ID:           idString(d.ID),
		RequestedURL: d.RequestedURL,
		FormFactor:   d.ConfigSettings.EmulatedFormFactor,
		Audits:       audits,
	}
}

// taskDocument is the natural key written to the task collections.
type taskDocument struct {
	RequestedURL string `bson:"requestedUrl"`
	Mode         string `bson:"mode"`
}

func taskFilter(task models.Task) bson.D {
	return bson.D{
		{Key: "requestedUrl", Value: task.RequestedURL},
		{Key: "mode", Value: string(task.Mode)},
	}
}

// metricOf reads an optional number (double, int32, int64 or decimal128).
// Absent and null fields are missing; anything else is not_numeric.
func metricOf(v bson.RawValue) models.MetricValue {
	switch v.Type {
	case 0, bson.TypeNull, bson.TypeUndefined:
		return models.MissingMetric(models.ReasonMissing)
	case bson.TypeDouble:
		return models.PresentMetric(v.Double())
	case bson.TypeInt32:
		return models.PresentMetric(float64(v.Int32()))
	case bson.TypeInt64:
		return models.PresentMetric(float64(v.Int64()))
	case bson.TypeDecimal128:
		// String gives NaN and Infinity spellings that ParseFloat accepts
		f, err := strconv.ParseFloat(v.Decimal128().String(), 64)
		if err != nil {
			return models.MissingMetric(models.ReasonNotNumeric)
		}
		return models.PresentMetric(f)
	default:
		return models.MissingMetric(models.ReasonNotNumeric)
	}
}

func idString(v bson.RawValue) string {
	switch v.Type {
	case 0:
		return ""
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	default:
		return v.String()
	}
}
