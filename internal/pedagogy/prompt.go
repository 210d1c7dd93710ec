package pedagogy

import (
	"fmt"
	"strings"
)

const advisorSystemPrompt = `Ти — методист із навчальних наук (learning sciences). Ти добираєш стратегії навчання на основі доказових методик: таксономії Блума, активного навчання, формувального оцінювання та диференціації. Відповідай українською мовою.`

func buildStrategiesMessage(grade int, subject, topic string, durationMinutes int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nПредмет: %s\nТема уроку: %s\nТривалість: %d хвилин\n",
		grade, subject, topic, durationMinutes))

	b.WriteString(`
Інструкції:
Запропонуй стратегії навчання для цього уроку:
1. Визнач цільовий рівень за таксономією Блума (пам'ять, розуміння, застосування, аналіз, синтез, оцінювання) і обґрунтуй вибір.
2. Порадь 2-3 методи залучення учнів (наприклад Think-Pair-Share, Jigsaw, гейміфікація, проблемне навчання) і поясни, де в уроці їх застосувати.
3. Врахуй вік учнів і тривалість уроку.`)

	return b.String()
}

func buildAssessmentDesignMessage(grade int, topic, bloomLevel string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nТема уроку: %s\n", grade, topic))
	if bloomLevel != "" {
		b.WriteString(fmt.Sprintf("Цільовий рівень за Блумом: %s\n", bloomLevel))
	}

	b.WriteString(`
Інструкції:
Спроєктуй підсумкове оцінювання для цієї теми:
1. Завдання мають перевіряти саме цільовий рівень за Блумом.
2. Опиши формат (тест, відкриті запитання, практичне завдання) і критерії оцінювання.
3. Додай орієнтовний розподіл балів.`)

	return b.String()
}

func buildTiersMessage(baseActivity string, grade int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\n\nБазова активність:\n%s\n", grade, baseActivity))

	b.WriteString(`
Інструкції:
Адаптуй базову активність у три рівні складності:
1. Базовий рівень — для учнів, яким потрібна додаткова підтримка: спрощені завдання, опори, підказки.
2. Середній рівень — базова активність як є або з незначними змінами.
3. Поглиблений рівень — для учнів, що випереджають: відкриті завдання, перенесення на нову ситуацію.
Опиши кожен рівень окремим блоком.`)

	return b.String()
}
