package content

import (
	"fmt"
	"strings"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

const teacherSystemPrompt = `Ти — досвідчений український вчитель із 20-річним стажем роботи за програмою НУШ. Ти створюєш якісні навчальні матеріали українською мовою, адаптовані до віку учнів.`

func buildObjectivesMessage(grade int, subject, topic string, outcomes []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nПредмет: %s\nТема уроку: %s\n", grade, subject, topic))

	if len(outcomes) > 0 {
		b.WriteString("\nОчікувані результати навчання за державним стандартом:\n")
		for _, o := range outcomes {
			b.WriteString(fmt.Sprintf("- %s\n", o))
		}
	}

	b.WriteString(`
Інструкції:
Сформулюй 3-5 цілей навчання для цього уроку за методикою SMART:
1. Кожна ціль конкретна, вимірювана і досяжна за один урок.
2. Починай кожну ціль з "Учні зможуть...".
3. Використовуй активні дієслова (пояснити, розв'язати, порівняти, створити).
4. Узгодь цілі з наведеними результатами навчання, якщо вони є.
Подай цілі пронумерованим списком.`)

	return b.String()
}

func buildWarmupMessage(grade int, topic string, minutes int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nТема уроку: %s\nТривалість розминки: %d хвилин\n", grade, topic, minutes))

	b.WriteString(`
Інструкції:
Створи коротку розминку на початок уроку:
1. Активізуй попередні знання учнів, пов'язані з темою.
2. Зроби її інтерактивною — запитання, гра або швидка вправа.
3. Вклади активність у вказаний час.
4. Опиши покроково, що робить вчитель і що роблять учні.`)

	return b.String()
}

func buildInstructionMessage(grade int, topic string, keyConcepts []string, minutes int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nТема уроку: %s\nТривалість пояснення: %d хвилин\n", grade, topic, minutes))

	if len(keyConcepts) > 0 {
		b.WriteString("\nКлючові поняття, які треба розкрити:\n")
		for _, c := range keyConcepts {
			b.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	b.WriteString(`
Інструкції:
Створи план прямого навчання (пояснення нового матеріалу):
1. Поясни матеріал простою мовою, відповідною до віку учнів.
2. Розкрий кожне ключове поняття з прикладом із повсякденного життя.
3. Додай 2-3 запитання для перевірки розуміння під час пояснення.
4. Структуруй текст за кроками з орієнтовним часом на кожен.`)

	return b.String()
}

func buildPracticeMessage(grade int, topic string, kind plan.PracticeKind) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nТема уроку: %s\n", grade, topic))

	if kind == plan.PracticeGuided {
		b.WriteString(`
Інструкції:
Створи активність керованої практики (вчитель веде, учні виконують разом):
1. Вчитель демонструє розв'язання, учні повторюють кроки.
2. Передбач поступове зменшення підтримки вчителя.
3. Додай типові помилки, на які вчителю варто звернути увагу.
4. Опиши активність покроково.`)
	} else {
		b.WriteString(`
Інструкції:
Створи активність самостійної практики (учні працюють без допомоги вчителя):
1. Завдання мають закріплювати щойно вивчений матеріал.
2. Учень може виконати їх самостійно, спираючись на пояснення уроку.
3. Додай критерії, за якими вчитель перевірить виконання.
4. Опиши активність покроково.`)
	}

	return b.String()
}

func buildAssessmentMessage(grade int, topic string, kind plan.AssessmentKind, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nТема уроку: %s\nКількість завдань: %d\n", grade, topic, count))

	if kind == plan.AssessmentFormative {
		b.WriteString(`
Інструкції:
Створи завдання формувального оцінювання для перевірки розуміння під час уроку:
1. Короткі завдання, кожне виконується за 1-2 хвилини.
2. Різні формати: усне запитання, вибір відповіді, коротка письмова відповідь.
3. До кожного завдання додай, що саме воно перевіряє.
Подай завдання пронумерованим списком.`)
	} else {
		b.WriteString(`
Інструкції:
Створи завдання підсумкового оцінювання за темою уроку:
1. Завдання охоплюють усі ключові поняття теми.
2. Ускладнення від простого відтворення до застосування.
3. До кожного завдання додай правильну відповідь або критерії оцінювання.
Подай завдання пронумерованим списком.`)
	}

	return b.String()
}
