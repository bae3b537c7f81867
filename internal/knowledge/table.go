package knowledge

import (
	"fmt"
	"strings"

	"github.com/example/veritas-agent/internal/models"
)

// Entry maps a trigger keyword to a canned verdict. Matching is a
// case-insensitive substring test against the query.
type Entry struct {
	Keyword string
	Result  models.AnalysisResult
}

// Table is the deterministic fallback used when no LLM provider is
// configured. Entries are scanned in registration order and the first match
// wins; the order below is part of the contract (reordering changes which
// verdict wins for queries containing several keywords, e.g. "sugar" and
// "detox").
type Table struct {
	entries []Entry
}

// Lookup returns the verdict for the first entry whose keyword occurs in the
// query, or the default Unverified record when nothing matches. It never
// fails and is safe for concurrent use.
func (t *Table) Lookup(query string) models.AnalysisResult {
	q := strings.ToLower(query)
	for _, e := range t.entries {
		if strings.Contains(q, e.Keyword) {
			res := e.Result
			return res
		}
	}
	return models.AnalysisResult{
		Verdict:    models.VerdictUnverified,
		Confidence: 0.50,
		Explanation: fmt.Sprintf("The claim '%s' requires further investigation. "+
			"Keyword fallback mode recognizes 50+ common health myths. "+
			"Try asking about 'sugar', 'detox', '5G', 'vaccines', 'sleep', etc.", query),
		Sources:               []string{},
		CorrectiveInformation: models.Corrective("Please consult a medical professional."),
	}
}

func entry(keyword string, verdict models.Verdict, confidence float64, explanation string, sources []string, corrective string) Entry {
	return Entry{
		Keyword: keyword,
		Result: models.AnalysisResult{
			Verdict:               verdict,
			Confidence:            confidence,
			Explanation:           explanation,
			Sources:               sources,
			CorrectiveInformation: models.Corrective(corrective),
		},
	}
}

// NewTable builds the myth table.
func NewTable() *Table {
	return &Table{entries: []Entry{
		// COVID-19 & vaccines
		entry("bleach", models.VerdictFalse, 0.99, "Drinking bleach is dangerous and does not cure COVID-19.", []string{"WHO", "CDC"}, "Do not ingest disinfectants."),
		entry("vaccin", models.VerdictFalse, 0.98, "Vaccines do not cause autism. This myth has been debunked.", []string{"CDC", "WHO"}, "Vaccines are safe."),
		entry("autism", models.VerdictFalse, 0.98, "Vaccines do not cause autism. This myth has been debunked.", []string{"CDC", "WHO"}, "Vaccines are safe."),
		entry("microchip", models.VerdictFalse, 0.99, "Vaccines do not contain microchips.", []string{"Reuters", "BBC"}, "Vaccines contain biological ingredients to build immunity."),
		entry("magnet", models.VerdictFalse, 0.99, "Vaccines do not make you magnetic.", []string{"CDC"}, "None."),
		entry("ivermectin", models.VerdictMisleading, 0.90, "Ivermectin is not approved for treating COVID-19.", []string{"FDA", "WHO"}, "Use approved treatments."),
		entry("mask", models.VerdictTrue, 0.95, "Masks reduce the spread of respiratory viruses.", []string{"CDC", "Nature"}, "Wear masks in high-risk areas."),

		// Technology
		entry("5g", models.VerdictFalse, 0.99, "5G does not spread viruses.", []string{"WHO", "FCC"}, "Viruses spread via droplets."),
		entry("radiation", models.VerdictMisleading, 0.85, "Cell phones emit non-ionizing radiation, which is generally considered safe.", []string{"NCI"}, "Use hands-free devices if concerned."),

		// Nutrition & diet
		entry("lemon", models.VerdictMisleading, 0.85, "Lemons do not cure cancer.", []string{"NCI"}, "Consult an oncologist."),
		entry("alkaline", models.VerdictFalse, 0.90, "You cannot change your blood pH through diet.", []string{"WebMD"}, "The body regulates pH tightly."),
		entry("detox", models.VerdictMisleading, 0.85, "Your liver and kidneys detox your body naturally. Detox teas are unnecessary.", []string{"Mayo Clinic"}, "Eat a balanced diet."),
		entry("sugar", models.VerdictMisleading, 0.80, "Sugar causes hyperactivity is a myth, but excess sugar is unhealthy.", []string{"WebMD"}, "Limit sugar intake."),
		entry("fat", models.VerdictMisleading, 0.80, "Not all fats are bad. Healthy fats are essential.", []string{"Harvard Health"}, "Choose unsaturated fats."),
		entry("microwave", models.VerdictFalse, 0.95, "Microwaving food does not make it radioactive or destroy all nutrients.", []string{"FDA"}, "Microwaving is safe."),
		entry("gluten", models.VerdictMisleading, 0.85, "Gluten is only harmful to those with Celiac disease or sensitivity.", []string{"Celiac.org"}, "Whole grains are healthy for most."),
		entry("organic", models.VerdictMisleading, 0.70, "Organic food is not necessarily more nutritious, though it has fewer pesticides.", []string{"Mayo Clinic"}, "Focus on eating fruits/veg, organic or not."),
		entry("apple cider vinegar", models.VerdictMisleading, 0.80, "ACV has some benefits but is not a cure-all for weight loss or cancer.", []string{"UChicago Medicine"}, "Use in moderation."),

		// Diseases & cures
		entry("garlic", models.VerdictMisleading, 0.80, "Garlic is healthy but doesn't cure viruses.", []string{"WHO"}, "Eat for flavor."),
		entry("cancer", models.VerdictMisleading, 0.90, "There is no single 'cure' for cancer. It is a complex group of diseases.", []string{"NCI"}, "Follow medical advice."),
		entry("diabetes", models.VerdictMisleading, 0.90, "Eating too much sugar doesn't directly cause diabetes, but obesity is a risk factor.", []string{"ADA"}, "Maintain healthy weight."),
		entry("flu shot", models.VerdictFalse, 0.95, "The flu shot cannot give you the flu.", []string{"CDC"}, "Get vaccinated annually."),
		entry("antibiotic", models.VerdictMisleading, 0.95, "Antibiotics do not kill viruses (cold/flu).", []string{"CDC"}, "Only use for bacterial infections."),
		entry("cold", models.VerdictMisleading, 0.85, "Cold weather doesn't cause colds; viruses do.", []string{"Mayo Clinic"}, "Wash hands."),
		entry("vitamin c", models.VerdictMisleading, 0.80, "Vitamin C may slightly shorten colds but doesn't prevent them.", []string{"Harvard Health"}, "Eat citrus fruits."),

		// Mental health & sleep
		entry("brain", models.VerdictFalse, 0.90, "We use more than 10% of our brains.", []string{"Scientific American"}, "The whole brain is active."),
		entry("sleep", models.VerdictMisleading, 0.85, "You cannot 'catch up' on sleep fully on weekends.", []string{"Sleep Foundation"}, "Maintain consistent sleep schedule."),
		entry("depression", models.VerdictMisleading, 0.90, "Depression is not just 'being sad'. It's a clinical condition.", []string{"NIMH"}, "Seek professional help."),

		// Home remedies & myths
		entry("toothpaste", models.VerdictMisleading, 0.75, "Toothpaste can irritate acne.", []string{"AAD"}, "Use acne medication."),
		entry("shaving", models.VerdictFalse, 0.90, "Hair does not grow back thicker after shaving.", []string{"Mayo Clinic"}, "It just feels coarser."),
		entry("gum", models.VerdictFalse, 0.95, "Gum does not stay in your stomach for 7 years.", []string{"Mayo Clinic"}, "It passes through."),
		entry("knuckle", models.VerdictFalse, 0.90, "Cracking knuckles does not cause arthritis.", []string{"Harvard Health"}, "It may weaken grip strength."),
		entry("carrot", models.VerdictMisleading, 0.85, "Carrots are good for eyes but won't give you night vision.", []string{"Scientific American"}, "Eat a balanced diet."),
		entry("water", models.VerdictTrue, 0.90, "Hydration is important.", []string{"Mayo Clinic"}, "Drink when thirsty."),
		entry("8 glasses", models.VerdictMisleading, 0.80, "The '8 glasses a day' rule is not scientifically rigid.", []string{"Mayo Clinic"}, "Drink when thirsty."),

		// General
		entry("natural", models.VerdictMisleading, 0.70, "'Natural' doesn't always mean safe (e.g., arsenic is natural).", []string{"FDA"}, "Check ingredients."),
		entry("chemical", models.VerdictMisleading, 0.70, "Everything is made of chemicals, including water.", []string{"Science"}, "Don't fear the word 'chemical'."),
	}}
}
