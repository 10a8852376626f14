package utils

// Преобразование имён полей на границе хранилища: снаружи camelCase,
// внутри snake_case. Это эвристика, а не проверенная биекция: идентификаторы
// с цифрами на границе регистра или подряд идущими заглавными могут не
// пройти круг без потерь. На входящем пути имена колонок берутся из таблиц
// реестра ресурсов, так что эвристика используется только наружу.

// ToCamelCase переводит snake_case в camelCase. Преобразуются только пары
// "_" + строчная ASCII-буква; ключ без подчёркиваний возвращается как есть.
func ToCamelCase(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			out = append(out, key[i+1]-('a'-'A'))
			i++
			continue
		}
		out = append(out, key[i])
	}
	return string(out)
}

// ToSnakeCase переводит camelCase в snake_case: перед каждой заглавной
// ASCII-буквой вставляется "_", сама буква опускается в нижний регистр.
func ToSnakeCase(key string) string {
	out := make([]byte, 0, len(key)+4)
	for i := 0; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' {
			out = append(out, '_', key[i]+('a'-'A'))
			continue
		}
		out = append(out, key[i])
	}
	return string(out)
}
