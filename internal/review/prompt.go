package review

import (
	"fmt"
	"strings"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

const reviewerSystemPrompt = `Ти — експерт із методики викладання та контролю якості навчальних матеріалів. Ти рецензуєш плани уроків українських шкіл чесно і конкретно. Відповідай українською мовою.`

func buildReviewMessage(planText string, grade int, subject string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Клас: %d\nПредмет: %s\n\nПлан уроку:\n%s\n", grade, subject, planText))

	b.WriteString(`
Інструкції:
Оціни план уроку за сімома критеріями, для кожного постав оцінку у форматі N/10:
1. Відповідність цілей темі та стандартам
2. Логічна послідовність етапів уроку
3. Відповідність віку учнів
4. Залученість учнів та інтерактивність
5. Якість диференціації
6. Якість оцінювання
7. Реалістичність таймінгу

Після оцінок напиши короткий висновок і заверши ОДНІЄЮ з фраз:
- "готовий до використання"
- "потребує незначних змін"
- "потребує значного доопрацювання"`)

	return b.String()
}

func buildAgeCheckMessage(content string, grade int) string {
	return fmt.Sprintf(`Клас: %d

Матеріал:
%s

Інструкції:
Оціни, чи відповідає цей матеріал віку учнів %d класу: складність мови, приклади, обсяг. Назви конкретні місця, які варто спростити або ускладнити.`, grade, content, grade)
}

func buildImprovementsMessage(component plan.Component, body string, grade int) string {
	return fmt.Sprintf(`Клас: %d
Компонент уроку: %s

Поточний текст:
%s

Інструкції:
Запропонуй 3-5 конкретних покращень цього компонента. Кожне покращення — що змінити і чому це допоможе учням.`, grade, component.Title(), body)
}
