package i18n

type Messages struct {
	AppTitle      string
	Target        string
	TargetKind    string
	Network       string
	Path          string
	Starting      string
	Progress      string
	AttemptFailed string
	MatchFound    string
	MatchMnemonic string
	MatchIndex    string
	MatchCounter  string
	Exhausted     string
	Interrupted   string
	TotalAttempts string
	FoundSaved    string
	TargetNoMatch string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			AppTitle:      "SeedScanner — перебор BIP-39 мнемоник",
			Target:        "цель: %s",
			TargetKind:    "тип адреса цели: %s",
			Network:       "сеть: %s",
			Path:          "путь: %s",
			Starting:      "Запуск...",
			Progress:      "Проверено %s мнемоник (~%.2f мнемоник/с)",
			AttemptFailed: "Ошибка при проверке мнемоники",
			MatchFound:    "Совпадение найдено!",
			MatchMnemonic: "Мнемоника: %s",
			MatchIndex:    "Индекс адреса: %d (%s)",
			MatchCounter:  "Счётчик: %s",
			Exhausted:     "Пространство перебора исчерпано.",
			Interrupted:   "Остановлено оператором.",
			TotalAttempts: "Готово. Всего попыток: %s",
			FoundSaved:    "Результат сохранён: %s",
			TargetNoMatch: "Адрес типа %s не может совпасть со схемой %s; поиск всё равно запущен",
		}
	default: // "en"
		return Messages{
			AppTitle:      "SeedScanner — BIP-39 mnemonic search",
			Target:        "target: %s",
			TargetKind:    "target address type: %s",
			Network:       "network: %s",
			Path:          "path: %s",
			Starting:      "Starting up...",
			Progress:      "Checked %s seeds total (~%.2f seeds/s)",
			AttemptFailed: "Error occurred while checking mnemonic",
			MatchFound:    "Match found!",
			MatchMnemonic: "Mnemonic: %s",
			MatchIndex:    "Address index: %d (%s)",
			MatchCounter:  "Counter: %s",
			Exhausted:     "Search space exhausted.",
			Interrupted:   "Stopped by operator.",
			TotalAttempts: "Finished. Total attempts: %s",
			FoundSaved:    "Result saved to %s",
			TargetNoMatch: "A %s address can never match the %s scheme; searching anyway",
		}
	}
}
