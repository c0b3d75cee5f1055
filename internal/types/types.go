// internal/types/types.go
package types

// EntityID - идентификатор сущности. Идентификаторы выдаются по возрастанию,
// поэтому их порядок совпадает с порядком создания сущностей.
type EntityID uint64
