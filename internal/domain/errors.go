package domain

import "errors"

// Классы ошибок клиентской стороны. Каждый сетевой сбой приводится ровно
// к одному из них, конкретика — в обёрнутом сообщении (fmt.Errorf + %w),
// проверка — только errors.Is.
var (
	ErrConnectivity = errors.New("server unreachable")  // сеть/таймаут/отказ соединения
	ErrUnauth       = errors.New("unauthorized")        // 401: пароль не подошёл
	ErrNotFound     = errors.New("not found")           // 404: нет документа/ресурса
	ErrServerFault  = errors.New("server fault")        // прочие не-2xx
	ErrBadParams    = errors.New("bad params")          // 400: невалидное тело/параметры
	ErrUnexpected   = errors.New("unexpected response") // 2xx, но тело не разобралось
)
