package catalog

import "interview_hub_backend/internal/model"

// k8sCourse Kubernetes 面试题库，内容移植自前端静态数据
var k8sCourse = model.Course{
	ID:          "k8s",
	Title:       "Kubernetes Ultimate Hub",
	Description: "AI-Powered Interview Trainer. Master K8s from Core to Kernel.",
	Levels: []model.Level{
		{
			ID:          "junior",
			Title:       "Junior",
			SubTitle:    "Базовые концепции",
			Icon:        "🌱",
			Color:       "emerald-500",
			Description: "Фундаментальные знания: примитивы Kubernetes, работа с kubectl, понимание разницы между императивным и декларативным подходами.",
			Modules: []model.Module{
				{
					ID:    "j1",
					Title: "1. Основы K8s (Core)",
					Desc:  "Pods, Deployments, Architecture",
					Questions: []model.Question{
						{
							Q: "Что такое Pod и почему это не то же самое, что контейнер?",
							A: `<p><strong>Pod</strong> — это минимальная единица в объектной модели Kubernetes. Ключевое отличие от контейнера в том, что Pod — это <strong>среда выполнения</strong> (конверт) для одного или нескольких контейнеров. Контейнеры внутри одного Pod всегда:</p>
<ul>
<li><strong>Размещаются вместе (Co-located):</strong> всегда запускаются на одной и той же Node.</li>
<li><strong>Делят сеть (Network Namespace):</strong> имеют один IP-адрес на всех, общаются через <code>localhost</code>.</li>
<li><strong>Делят хранилище:</strong> могут монтировать одни и те же тома (Volumes) для обмена данными.</li>
</ul>`,
							Tip: "На интервью важно упомянуть, что Pod — это атомарная единица масштабирования. Вы не масштабируете контейнеры внутри пода, вы масштабируете количество подов.",
						},
						{
							Q: "Deployment vs StatefulSet: в чем разница и когда использовать?",
							A: `<p>Это два разных контроллера для управления подами.</p>
<h4>Deployment</h4>
<p>Для <strong>Stateless</strong> приложений (веб-серверы, API). Поды взаимозаменяемы ("cattle"), имена случайны, порядок запуска не важен, под капотом ReplicaSet.</p>
<h4>StatefulSet</h4>
<p>Для <strong>Stateful</strong> приложений (базы данных, Zookeeper, Kafka). Поды уникальны ("pets"), имена предсказуемы (<code>db-0</code>, <code>db-1</code>), строгий порядок запуска и удаления, стабильное сетевое имя и привязка к PersistentVolume.</p>`,
							Tip: "Если вы используете базу данных, вам почти всегда нужен StatefulSet (или Operator), чтобы сохранить целостность данных при рестартах.",
						},
						{
							Q: "В чем разница между Imperative и Declarative подходом?",
							A: `<p><strong>Imperative:</strong> вы говорите системе <em>как</em> достичь результата шаг за шагом (<code>kubectl run</code>, <code>kubectl scale</code>). Минусы: трудно воспроизвести, нет истории изменений в Git.</p>
<p><strong>Declarative:</strong> вы описываете <em>желаемое конечное состояние</em> (Desired State) в YAML и применяете его через <code>kubectl apply -f</code>. Плюсы: GitOps, воспроизводимость, идемпотентность.</p>`,
							Tip: "Declarative — это стандарт индустрии (Infrastructure as Code).",
						},
					},
				},
				{
					ID:    "j2",
					Title: "2. Сервисы (Network Basics)",
					Desc:  "Services, DNS",
					Questions: []model.Question{
						{
							Q: "Какие бывают типы Service и для чего они нужны?",
							A: `<p>Service — это абстракция, которая определяет логический набор подов и политику доступа к ним.</p>
<ul>
<li><strong>ClusterIP (Default):</strong> внутренний IP, доступный только изнутри кластера. Для связи микросервисов между собой.</li>
<li><strong>NodePort:</strong> статический порт (30000-32767) на каждой ноде, доступ извне.</li>
<li><strong>LoadBalancer:</strong> внешний балансировщик облачного провайдера, "белый" IP.</li>
<li><strong>ExternalName:</strong> работает как DNS CNAME запись на внешнее доменное имя.</li>
</ul>`,
							Tip: "В реальном проде NodePort редко используют напрямую. Обычно он служит 'клеем' для Ingress Controller или внешнего Load Balancer.",
						},
						{
							Q: "Как работает Service Discovery (DNS) в Kubernetes?",
							A: `<p>Kubernetes использует аддон (обычно <strong>CoreDNS</strong>), который следит за API сервером и создает DNS записи для каждого сервиса.</p>
<p>Сервису <code>my-service</code> в неймспейсе <code>my-ns</code> присваивается запись <code>my-service.my-ns.svc.cluster.local</code>. Поды в том же неймспейсе обращаются к нему просто по имени, из других неймспейсов — по FQDN.</p>`,
							Tip: "Самый быстрый способ отладить DNS: запустить busybox и сделать nslookup my-service.",
						},
					},
				},
			},
		},
		{
			ID:          "middle",
			Title:       "Middle",
			SubTitle:    "Deep Dive & Internals",
			Icon:        "⚙️",
			Color:       "blue-600",
			Description: "Тот самый \"Deep Dive\". Разбор того, как компоненты общаются друг с другом, как работает сеть (CNI, Ingress), хранение (CSI) и жизненный цикл приложений.",
			Modules: []model.Module{
				{
					ID:    "m1",
					Title: "1. Архитектура и Control Plane",
					Desc:  "Deep Dive Flow",
					Questions: []model.Question{
						{
							Q: "Что происходит под капотом, когда мы делаем `kubectl apply`?",
							A: `<p>Это асинхронный процесс, вовлекающий множество компонентов:</p>
<ol>
<li>kubectl → API Server (AuthN, AuthZ, Validation)</li>
<li>API Server → Etcd (запись Desired State)</li>
<li>Deployment Controller видит новый Deployment → создает ReplicaSet</li>
<li>ReplicaSet Controller → создает Pod object</li>
<li>Scheduler видит Pod без nodeName → выбирает ноду (Filtering/Scoring) → Binding</li>
<li>Kubelet на ноде → CRI (containerd) → запуск контейнера</li>
<li>Kubelet → обновляет статус в API Server → Etcd</li>
</ol>
<p>Никто не отдает прямых приказов. Все компоненты работают через наблюдение (Watch) за изменениями в Etcd.</p>`,
							Tip: "Ключевое слово — 'Reconciliation Loop' (Петля согласования). Это сердце K8s.",
						},
						{
							Q: "Зачем нужен HA кластер (3 мастера) и как работает кворум Etcd?",
							A: `<p>Один мастер — это точка отказа (SPOF). <strong>Etcd</strong> использует алгоритм консенсуса <strong>RAFT</strong>: для записи требуется большинство голосов (кворум), формула <code>(N / 2) + 1</code>.</p>
<ul>
<li>Для 3 нод: (3/2)+1 = 2. Можно потерять 1 ноду.</li>
<li>Если падают 2 ноды, кворума нет — кластер переходит в Read-Only.</li>
</ul>
<p>Работающие приложения (Data Plane) при потере кворума не страдают, но управлять кластером невозможно.</p>`,
							Tip: "Производительность Etcd критически зависит от скорости диска (latency). Всегда используйте SSD/NVMe.",
						},
						{
							Q: "Kubelet — это клиент или сервер?",
							A: `<p>Это подвох. Он является <strong>и тем, и другим</strong>.</p>
<ul>
<li><strong>Клиент (основная роль):</strong> подключается к API Server за <code>PodSpecs</code> и отправляет <code>NodeStatus/PodStatus</code>.</li>
<li><strong>Сервер (HTTPS :10250):</strong> слушает команды от API Server — <code>kubectl logs</code>, <code>kubectl exec</code> идут через него; Prometheus scrape'ит с него метрики.</li>
</ul>`,
							Tip: "Отличный момент упомянуть безопасность: порт 10250 часто является вектором атаки, если не закрыт аутентификацией.",
						},
					},
				},
				{
					ID:    "m4",
					Title: "4. Жизненный цикл (Lifecycle)",
					Desc:  "Probes, Hooks",
					Questions: []model.Question{
						{
							Q: "Liveness vs Readiness Probe: когда какая нужна?",
							A: `<p>Разные действия при провале проверки:</p>
<ul>
<li><strong>Liveness (Жив?):</strong> FAIL → Kubelet делает <strong>RESTART</strong> контейнера. Use case: приложение зависло (Deadlock), но процесс висит.</li>
<li><strong>Readiness (Готов?):</strong> FAIL → Kubelet <strong>убирает IP пода из Endpoints</strong>, трафик перестает идти, под продолжает работать. Use case: прогрев кэша, временная перегрузка.</li>
</ul>`,
							Tip: "Золотое правило: никогда не ставьте Liveness Probe на внешнюю зависимость (например, коннект к БД). Если БД упадет, весь кластер уйдет в бесконечный ребут.",
						},
						{
							Q: "Почему при обновлении приложения (RollingUpdate) пользователи получают 502 ошибки?",
							A: `<p>Проблема в асинхронности процессов удаления:</p>
<ol>
<li>Kubelet шлет SIGTERM поду, приложение закрывает сокет.</li>
<li>Параллельно Endpoint Controller удаляет IP из списка.</li>
<li>Ingress Controller получает обновление и делает reload конфига.</li>
</ol>
<p>Процесс не мгновенный — Ingress может слать трафик в уже закрывающийся под. <strong>Решение:</strong> <code>preStop hook</code> с <code>sleep 5-10</code>, давая Ingress'у время обновить таблицы.</p>`,
							Tip: "Также убедитесь, что приложение корректно обрабатывает SIGTERM (Graceful Shutdown), дожидаясь завершения текущих запросов.",
						},
					},
				},
				{
					ID:    "m6",
					Title: "6. Конфигурация и Безопасность",
					Desc:  "Secrets, Env",
					Questions: []model.Question{
						{
							Q: "Secret vs ConfigMap: безопасны ли Secret?",
							A: `<p>Нет, не "из коробки".</p>
<ul>
<li><strong>Base64:</strong> это кодировка, а не шифрование.</li>
<li><strong>Encryption at Rest:</strong> по умолчанию в etcd секреты лежат открытым текстом; нужно включать EncryptionConfiguration на API сервере.</li>
<li><strong>Внутри пода:</strong> монтируются как tmpfs (в памяти), но root внутри контейнера может их прочитать.</li>
</ul>`,
							Tip: "Обязательно упомяните 'Encryption at Rest' и внешние хранилища секретов (Vault/SealedSecrets), чтобы показать Senior подход.",
						},
						{
							Q: "Я хочу передать Secret через переменную окружения. В чем минус?",
							A: `<p>Минус в невозможности обновления "на лету". Если вы меняете Secret в K8s, переменная окружения в уже запущенном процессе <strong>не изменится</strong> — процесс читает <code>env</code> только при старте. Чтобы применить новый пароль, нужен <code>rollout restart</code>.</p>
<p>При монтировании файлом (Volume) файл обновляется автоматически, и приложение может его перечитать.</p>`,
							Tip: "Переменные окружения также видны в логах при ошибках и в дампах процессов. Файловое монтирование считается более безопасным.",
						},
					},
				},
			},
		},
		{
			ID:          "senior",
			Title:       "Senior",
			SubTitle:    "Architect & Kernel",
			Icon:        "🧠",
			Color:       "purple-600",
			Description: "Сложные архитектурные вопросы: Etcd RAFT, внутренности ядра Linux (Cgroups, Namespaces), безопасность, паттерны контроллеров (Informers) и масштабирование.",
			Modules: []model.Module{
				{
					ID:    "s1",
					Title: "1. Внутренности Архитектуры",
					Desc:  "Architect Level",
					Questions: []model.Question{
						{
							Q: "Что такое Informer и Reflector в client-go и зачем они нужны?",
							A: `<p>Это ключевой паттерн оптимизации работы контроллеров. Если бы каждый контроллер постоянно опрашивал API (Polling), API сервер бы упал.</p>
<ul>
<li><strong>Reflector:</strong> выполняет <code>List</code> и длинный <code>Watch</code> запрос, объекты кладутся в очередь <code>DeltaFIFO</code>.</li>
<li><strong>Informer:</strong> забирает объекты из очереди и обновляет <strong>локальный кэш</strong> (Store/Indexer).</li>
</ul>
<p>Reconcile loop читает данные из локального кэша (мгновенно), а не из API. Это снижает нагрузку на порядки.</p>`,
							Tip: "Упомяните 'SharedInformerFactory' — механизм, позволяющий сотням контроллеров использовать один и тот же кэш и connection.",
						},
						{
							Q: "Как работает Leader Election в Control Plane компонентах?",
							A: `<p>В HA кластере запущено 3 реплики Controller Manager и Scheduler, но работать должна <strong>только одна</strong>.</p>
<ol>
<li>Используется объект <code>Lease</code> в неймспейсе <code>kube-system</code>.</li>
<li>Все реплики пытаются обновить этот объект, записывая свое имя и timestamp.</li>
<li>Кто успел записать — тот Лидер, он обновляет timestamp каждые N секунд.</li>
<li>Остальные следят за Lease и при протухании timestamp пытаются захватить лидерство.</li>
</ol>`,
							Tip: "Это паттерн 'Optimistic Locking'. Важно: часы на нодах должны быть синхронизированы.",
						},
					},
				},
				{
					ID:    "s2",
					Title: "2. Ядро Linux и Ресурсы",
					Desc:  "Cgroups, OOM",
					Questions: []model.Question{
						{
							Q: "Как CPU Requests и Limits реализованы в ядре Linux?",
							A: `<p>Kubernetes транслирует спецификацию пода в настройки <strong>Cgroups</strong>.</p>
<ul>
<li><strong>Requests → cpu.shares:</strong> "мягкий" вес, работает только при конкуренции за процессор.</li>
<li><strong>Limits → cpu.cfs_quota_us:</strong> жесткий лимит времени планировщика (CFS). Исчерпал квоту — ядро принудительно убирает процесс с CPU (Throttling) до следующего периода, даже если нода простаивает.</li>
</ul>`,
							Tip: "Для latency-sensitive приложений (базы данных, Java) часто рекомендуют не ставить CPU Limits, чтобы избежать троттлинга.",
						},
						{
							Q: "Как OOM Killer выбирает жертву? (OOM Score)",
							A: `<p>Когда память кончается, ядро Linux убивает процессы по <code>oom_score</code>. Kubelet манипулирует этим счетом через <code>oom_score_adj</code> в зависимости от QoS класса пода:</p>
<ul>
<li><strong>Guaranteed (Req == Lim):</strong> -998, почти бессмертны.</li>
<li><strong>BestEffort (No limits):</strong> +1000, первые кандидаты на вылет.</li>
<li><strong>Burstable:</strong> значение рассчитывается динамически.</li>
</ul>`,
							Tip: "Не путайте Node OOM (ядро убивает процесс) и Eviction (Kubelet мягко изгоняет поды). Kubelet пытается сработать раньше ядра.",
						},
					},
				},
			},
		},
	},
}
