package polint

import "fmt"

// Lang is the active language.
var Lang = "en"

// Messages keyed by ID, with en/de/fr variants.
var messages = map[string]map[string]string{
	// === Check ===
	"checking":        {"en": "Checking %d catalog(s)...", "de": "Prüfe %d Katalog(e)...", "fr": "Vérification de %d catalogue(s)..."},
	"catalog_scanned": {"en": "%s: %d entries, %d issue(s)", "de": "%s: %d Einträge, %d Problem(e)", "fr": "%s : %d entrées, %d problème(s)"},
	"catalog_failed":  {"en": "%s: %v", "de": "%s: %v", "fr": "%s : %v"},
	"all_clean":       {"en": "All catalogs clean", "de": "Alle Kataloge sauber", "fr": "Tous les catalogues sont propres"},
	"issues_found":    {"en": "%d issue(s) in %d catalog(s)", "de": "%d Problem(e) in %d Katalog(en)", "fr": "%d problème(s) dans %d catalogue(s)"},
	"files_checked":   {"en": "Catalogs checked: %d", "de": "Geprüfte Kataloge: %d", "fr": "Catalogues vérifiés : %d"},
	"entries_parsed":  {"en": "Entries parsed: %d", "de": "Gelesene Einträge: %d", "fr": "Entrées lues : %d"},
	"issues_count":    {"en": "Issues found: %d", "de": "Gefundene Probleme: %d", "fr": "Problèmes trouvés : %d"},
	"failed_count":    {"en": "Malformed catalogs: %d", "de": "Fehlerhafte Kataloge: %d", "fr": "Catalogues mal formés : %d"},
	"printf_enabled":  {"en": "printf directive check enabled", "de": "printf-Direktiven-Prüfung aktiv", "fr": "contrôle des directives printf activé"},

	// === Watch ===
	"watch_started":   {"en": "Watching %d path(s) — Ctrl-C to stop", "de": "Beobachte %d Pfad(e) — Strg-C zum Beenden", "fr": "Surveillance de %d chemin(s) — Ctrl-C pour arrêter"},
	"change_detected": {"en": "Change detected: %s", "de": "Änderung erkannt: %s", "fr": "Modification détectée : %s"},
	"notify_issues":   {"en": "Issues found in translation catalogs", "de": "Probleme in Übersetzungskatalogen gefunden", "fr": "Problèmes détectés dans les catalogues de traduction"},
	"notify_clean":    {"en": "Translation catalogs are clean again", "de": "Übersetzungskataloge sind wieder sauber", "fr": "Les catalogues de traduction sont de nouveau propres"},

	// === Journal ===
	"journal_recorded": {"en": "Run %s recorded in journal", "de": "Lauf %s im Journal vermerkt", "fr": "Exécution %s consignée dans le journal"},
	"journal_empty":    {"en": "No recorded runs", "de": "Keine aufgezeichneten Läufe", "fr": "Aucune exécution enregistrée"},
	"prune_candidates": {"en": "Prune candidates: %d", "de": "Löschkandidaten: %d", "fr": "Candidats à la suppression : %d"},
	"prune_deleted":    {"en": "Deleted: %d", "de": "Gelöscht: %d", "fr": "Supprimés : %d"},
	"prune_dry_run":    {"en": "Dry run — pass --execute to delete", "de": "Probelauf — mit --execute wirklich löschen", "fr": "Simulation — passer --execute pour supprimer"},

	// === Config ===
	"config_loaded": {"en": "Project config: %s", "de": "Projektkonfiguration: %s", "fr": "Configuration du projet : %s"},
	"config_saved":  {"en": "Config saved to %s", "de": "Konfiguration gespeichert unter %s", "fr": "Configuration enregistrée dans %s"},

	// === Signal ===
	"interrupted":     {"en": "Interrupted", "de": "Abgebrochen", "fr": "Interrompu"},
	"signal_received": {"en": "Signal received: %v — shutting down...", "de": "Signal empfangen: %v — beende...", "fr": "Signal reçu : %v — arrêt en cours..."},
}

// Msg returns a localized message by key.
// Falls back to English if the key or language is missing.
func Msg(key string) string {
	if m, ok := messages[key]; ok {
		if s, ok := m[Lang]; ok {
			return s
		}
		if s, ok := m["en"]; ok {
			return s
		}
	}
	return fmt.Sprintf("[missing: %s]", key)
}
