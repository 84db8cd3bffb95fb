package catalog

// Default returns the tender shortcut catalog. SQL entries run against the
// database directly; prompt entries are routed through the chat assistant.
func Default() []Entry {
	entries := []Entry{
		{
			Label:    "construction-tenders",
			Category: "Tender Analysis",
			SQL: `
SELECT et.procurement_id, et.procurement_name, et.contracting_authority_name,
       etd.tender_name, etd.short_description, etd.estimated_cost
FROM estonian_tenders et
LEFT JOIN estonian_tender_details etd ON et.procurement_id = etd.procurement_id
WHERE LOWER(et.procurement_name) LIKE '%construction%'
   OR LOWER(et.procurement_name) LIKE '%ehitus%'
   OR LOWER(etd.short_description) LIKE '%construction%'
   OR LOWER(etd.short_description) LIKE '%ehitus%'
ORDER BY et.created_at DESC
LIMIT 20;`,
		},
		{
			Label:    "tenders-harjumaa",
			Category: "Geographic Analysis",
			SQL: `
SELECT et.procurement_id, et.procurement_name, et.contracting_authority_name,
       etd.tender_name, etd.estimated_cost, etd.nuts_code
FROM estonian_tenders et
LEFT JOIN estonian_tender_details etd ON et.procurement_id = etd.procurement_id
WHERE LOWER(etd.nuts_code) LIKE '%harju%'
   OR LOWER(etd.location_additional_info) LIKE '%harju%'
   OR LOWER(et.contracting_authority_name) LIKE '%harju%'
ORDER BY et.created_at DESC
LIMIT 20;`,
		},
		{
			Label:    "recent-tenders",
			Category: "Time Analysis",
			SQL: `
SELECT et.procurement_id, et.procurement_name, et.contracting_authority_name,
       etd.tender_name, etd.estimated_cost, et.created_at
FROM estonian_tenders et
LEFT JOIN estonian_tender_details etd ON et.procurement_id = etd.procurement_id
ORDER BY et.created_at DESC
LIMIT 20;`,
		},
		{
			Label:    "high-value-tenders",
			Category: "Financial Analysis",
			SQL: `
SELECT et.procurement_id, et.procurement_name, et.contracting_authority_name,
       etd.tender_name, etd.estimated_cost
FROM estonian_tenders et
JOIN estonian_tender_details etd ON et.procurement_id = etd.procurement_id
WHERE etd.estimated_cost IS NOT NULL
ORDER BY etd.estimated_cost DESC
LIMIT 20;`,
		},
		{
			Label:    "top-organizations",
			Category: "Organization Analysis",
			SQL: `
SELECT et.contracting_authority_name, COUNT(*) AS tender_count
FROM estonian_tenders et
GROUP BY et.contracting_authority_name
ORDER BY tender_count DESC
LIMIT 20;`,
		},
		{
			Label:    "expired-tenders",
			Category: "Status Analysis",
			Prompt:   "Show me expired tenders",
		},
		{
			Label:    "procurement-types",
			Category: "Procurement Analysis",
			Prompt:   "What types of procurement are most common?",
		},
		{
			Label:    "tenders-this-month",
			Category: "Time Analysis",
			Prompt:   "Show me tenders from this month",
		},
		{
			Label:    "regional-activity",
			Category: "Geographic Analysis",
			Prompt:   "Which regions have the most tender activity?",
		},
		{
			Label:    "it-tenders",
			Category: "Category Analysis",
			Prompt:   "Show me IT related tenders",
		},
	}

	return entries
}
