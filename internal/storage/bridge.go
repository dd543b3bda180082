package storage

// Bridge оборачивает синхронное строково-ключевое хранилище.
// Каждая сущность сохраняется под собственным независимым ключом,
// атомарность записи нескольких ключей не гарантируется
type Bridge interface {
	// Read возвращает сохранённое значение и признак его наличия.
	// Ошибки чтения деградируют до отсутствия значения
	Read(key string) ([]byte, bool)

	// Write сохраняет значение под ключом, перезаписывая существующее
	Write(key string, value []byte) error

	// Remove удаляет сохранённое значение
	Remove(key string) error

	// Close освобождает ресурсы хранилища
	Close() error
}
