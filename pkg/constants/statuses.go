package constants

// Статусы берутся из фиксированных словарей UI. Хранилище их не проверяет,
// проверка принадлежности — забота слоя бизнес-правил.

const (
	ClientStatusLead      = "Лид"
	ClientStatusNew       = "Новый клиент"
	ClientStatusRepeat    = "Повторное обращение"
	ClientStatusRegular   = "Постоянный клиент"
	ClientStatusClosed    = "Закрытый клиент"
	ClientStatusBlacklist = "Черный список"
)

const (
	RequestStatusNew             = "Новая заявка"
	RequestStatusManagerWork     = "В работе у менеджера"
	RequestStatusEngineerWork    = "В работе у инженера"
	RequestStatusProposal        = "Создание КП"
	RequestStatusClientReview    = "У клиента"
	RequestStatusDeal            = "Сделка"
	RequestStatusDealLost        = "Сделка проиграна"
	RequestStatusFulfillment     = "Исполнение сделки"
	RequestStatusContractDone    = "Контракт завершен"
	RequestStatusAwaitingPayment = "Ожидание оплаты"
	RequestStatusPaymentReceived = "Оплата получена"
	RequestStatusCompleted       = "Завершена"
)

// ClientStatuses — воронка клиента в порядке следования стадий.
var ClientStatuses = []string{
	ClientStatusLead,
	ClientStatusNew,
	ClientStatusRepeat,
	ClientStatusRegular,
	ClientStatusClosed,
	ClientStatusBlacklist,
}

// SuccessfulDealStatuses — стадии, на которых сделка считается выигранной.
// По этому набору дашборд считает сумму дохода.
var SuccessfulDealStatuses = []string{
	RequestStatusFulfillment,
	RequestStatusContractDone,
	RequestStatusAwaitingPayment,
	RequestStatusPaymentReceived,
	RequestStatusCompleted,
}

// RequestStatuses — конвейер заявки в порядке следования стадий.
var RequestStatuses = []string{
	RequestStatusNew,
	RequestStatusManagerWork,
	RequestStatusEngineerWork,
	RequestStatusProposal,
	RequestStatusClientReview,
	RequestStatusDeal,
	RequestStatusDealLost,
	RequestStatusFulfillment,
	RequestStatusContractDone,
	RequestStatusAwaitingPayment,
	RequestStatusPaymentReceived,
	RequestStatusCompleted,
}
