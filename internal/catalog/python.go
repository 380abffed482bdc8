package catalog

import "interview_hub_backend/internal/model"

// pythonCourse второй курс, подключен для проверки многокурсовой навигации
var pythonCourse = model.Course{
	ID:          "python",
	Title:       "Python Interview Prep",
	Description: "Подготовка к интервью по Python: от синтаксиса до GIL.",
	Levels: []model.Level{
		{
			ID:          "junior",
			Title:       "Junior",
			SubTitle:    "Основы языка",
			Icon:        "🐍",
			Color:       "emerald-500",
			Description: "Типы данных, изменяемость, область видимости и базовые структуры.",
			Modules: []model.Module{
				{
					ID:    "p1",
					Title: "1. Типы и изменяемость",
					Desc:  "Mutable vs Immutable",
					Questions: []model.Question{
						{
							Q: "Какие типы в Python изменяемые, а какие нет, и почему это важно?",
							A: `<p><strong>Неизменяемые:</strong> int, float, str, tuple, frozenset. <strong>Изменяемые:</strong> list, dict, set.</p>
<p>Это важно для передачи аргументов: изменяемый объект, переданный в функцию, может быть модифицирован внутри нее. Классическая ловушка — изменяемое значение по умолчанию (<code>def f(x=[])</code>): список создается один раз при определении функции и разделяется между вызовами.</p>`,
							Tip: "Упомяните, что ключи dict должны быть хешируемыми, то есть неизменяемыми.",
						},
						{
							Q: "Что такое GIL и как он влияет на многопоточность?",
							A: `<p><strong>GIL (Global Interpreter Lock)</strong> — мьютекс интерпретатора CPython, позволяющий исполнять байткод только одному потоку за раз.</p>
<p>CPU-bound задачи не ускоряются потоками — нужен <code>multiprocessing</code>. IO-bound задачи ускоряются: во время ожидания IO поток отпускает GIL.</p>`,
							Tip: "Сильный ответ: GIL — свойство CPython, а не языка; в Jython/IronPython его нет.",
						},
					},
				},
			},
		},
	},
}
