package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
)

// job is the fixture record a preview route is built from: one service stop
// on a technician's day.
type job struct {
	id        string
	customer  string
	address   string
	status    string
	done      bool
	progress  float64
	priority  int
	scheduled time.Time
	notes     string
}

func (j *job) RecordID() string { return j.id }

var fixtureStops = []struct {
	customer string
	address  string
	status   string
	notes    string
}{
	{"Harborview Diner", "112 Quay St", "urgent", "Roach activity near the walk-in. Customer wants a call first."},
	{"Cedar Ridge Apartments", "4400 Cedar Ridge Dr, Bldg C", "inProgress", ""},
	{"Maple & Main Bakery", "87 Main St", "pending", "Gate code 4415."},
	{"Lakeside Elementary", "1 Lakeside Loop", "pending", "After 3:30pm only."},
	{"Granite Self-Storage", "2200 Industrial Pkwy", "completed", ""},
	{"Willow Creek HOA", "Willow Creek Clubhouse", "pending", ""},
	{"Pinehurst Medical Plaza", "300 Pinehurst Ave, Suite 120", "skipped", "Rescheduled by office."},
	{"The Corner Grocer", "5th & Alder", "pending", ""},
}

// fixtureJobs generates n service stops, cycling the canned route and giving
// every record a fresh identity.
func fixtureJobs(n int) []sdui.Record {
	base := time.Now().Truncate(time.Hour)
	records := make([]sdui.Record, 0, n)
	for i := 0; i < n; i++ {
		stop := fixtureStops[i%len(fixtureStops)]
		j := &job{
			id:        fmt.Sprintf("job-%s", uuid.NewString()[:8]),
			customer:  stop.customer,
			address:   stop.address,
			status:    stop.status,
			priority:  i%3 + 1,
			scheduled: base.Add(time.Duration(i) * 45 * time.Minute),
			notes:     stop.notes,
		}
		switch j.status {
		case "completed":
			j.done = true
			j.progress = 1
		case "inProgress":
			j.progress = 0.4
		}
		records = append(records, j)
	}
	return records
}

// fixtureContext builds the render context every preview command shares:
// generated route records, an accessor per job field, and the configured
// palette. Actions are host behavior; the demo registers its own.
func fixtureContext(cfg *Config) (sdui.Context, error) {
	palette := sdui.PaletteByName(cfg.Palette)
	if palette == nil {
		return sdui.Context{}, fmt.Errorf("unknown palette %q (built-in: default, highContrast)", cfg.Palette)
	}

	ctx := sdui.NewContext()
	ctx.Palette = palette
	ctx.Records.Set(fixtureJobs(cfg.Fixtures.Jobs))

	ctx.Accessors["customer"] = func(r sdui.Record) any { return r.(*job).customer }
	ctx.Accessors["address"] = func(r sdui.Record) any { return r.(*job).address }
	ctx.Accessors["status"] = func(r sdui.Record) any { return r.(*job).status }
	ctx.Accessors["done"] = func(r sdui.Record) any { return r.(*job).done }
	ctx.Accessors["progress"] = func(r sdui.Record) any { return r.(*job).progress }
	ctx.Accessors["priority"] = func(r sdui.Record) any { return r.(*job).priority }
	ctx.Accessors["scheduled"] = func(r sdui.Record) any { return r.(*job).scheduled }
	ctx.Accessors["notes"] = func(r sdui.Record) any { return r.(*job).notes }

	return ctx, nil
}

// demoSchema is the built-in route screen used when no document is named. It
// exercises most of the component vocabulary: collection rows with state
// chips, live-bound inputs, a toggle-driven conditional, and actions.
const demoSchema = `{
  "version": 1,
  "component": {
    "id": "route", "type": "scroll", "children": [
      { "id": "route-body", "type": "vstack", "spacing": 1, "padding": 1, "children": [
        { "id": "route-alert", "type": "alertBanner",
          "text": "2 urgent stops on this route" },
        { "id": "route-stops", "type": "section", "label": "Today's Route", "spacing": 1, "children": [
          { "id": "stop-list", "type": "list", "itemView":
            { "id": "stop-card", "type": "card", "spacing": 0, "children": [
              { "id": "stop-head", "type": "hstack", "spacing": 1, "children": [
                { "id": "stop-customer", "type": "text", "valueKey": "customer",
                  "font": "headline", "fontWeight": "semibold" },
                { "id": "stop-gap", "type": "spacer" },
                { "id": "stop-status", "type": "statusChip", "valueKey": "status" }
              ]},
              { "id": "stop-address", "type": "text", "valueKey": "address",
                "font": "caption", "foregroundColor": "muted" },
              { "id": "stop-progress", "type": "progress", "valueKey": "progress" }
            ]}
          }
        ]},
        { "id": "route-rule", "type": "divider" },
        { "id": "service-entry", "type": "section", "label": "Service Entry", "spacing": 1, "children": [
          { "id": "entry-bait", "type": "checklistRow", "valueKey": "baitPlaced",
            "label": "Bait stations placed" },
          { "id": "entry-cleared", "type": "toggle", "valueKey": "siteCleared",
            "label": "Site cleared for treatment" },
          { "id": "entry-dosage", "type": "slider", "valueKey": "dosageMl",
            "label": "Dosage (ml)", "minValue": 0, "maxValue": 60, "step": 5 },
          { "id": "entry-product", "type": "picker", "valueKey": "product",
            "label": "Product", "options": ["Gel bait", "Dust", "Liquid barrier", "Trap only"] },
          { "id": "entry-visits", "type": "stepper", "valueKey": "visitCount",
            "label": "Visits this quarter", "minValue": 0, "maxValue": 12 },
          { "id": "entry-notes", "type": "textArea", "valueKey": "serviceNotes",
            "label": "Notes" },
          { "id": "entry-followup", "type": "datePicker", "valueKey": "followUp",
            "label": "Follow-up" }
        ]},
        { "id": "entry-summary", "type": "conditional", "conditionKey": "siteCleared", "children": [
          { "id": "summary-md", "type": "markdown",
            "text": "**Ready to treat.** Confirm dosage and product before applying." }
        ]},
        { "id": "route-actions", "type": "hstack", "spacing": 2, "children": [
          { "id": "act-complete", "type": "button", "label": "Complete stop",
            "actionId": "completeStop", "fontWeight": "semibold" },
          { "id": "act-map", "type": "link", "label": "Open map", "actionId": "openMap" },
          { "id": "act-sign", "type": "signatureBox", "label": "Customer signature",
            "actionId": "captureSignature" }
        ]}
      ]}
    ]
  }
}`
