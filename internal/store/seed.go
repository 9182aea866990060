package store

import (
	"context"

	"github.com/uptrace/bun"
)

// seedQuestions fills an empty catalog with the built-in question set. A
// non-empty catalog is left untouched so user edits survive restarts.
func seedQuestions(ctx context.Context, db *bun.DB) error {
	count, err := db.NewSelect().Model((*QuestionRow)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]QuestionRow, len(seedData))
	copy(rows, seedData)
	_, err = db.NewInsert().Model(&rows).Exec(ctx)
	return err
}

func q(subjectKey, subjectName, question string, answers [4]string) QuestionRow {
	return QuestionRow{
		SubjectKey:   subjectKey,
		SubjectName:  subjectName,
		Question:     question,
		Answer0:      answers[0],
		Answer1:      answers[1],
		Answer2:      answers[2],
		Answer3:      answers[3],
		CorrectIndex: 0,
	}
}

// The seed set keeps the correct answer in column 0; presentation order is
// shuffled at display time, not in storage.
var seedData = []QuestionRow{
	// Mathematik
	q("mathe", "Mathematik", "Was ist die Lösung der Gleichung: 3x + 7 = 22?", [4]string{"x = 5", "x = 7", "x = 3", "x = 15"}),
	q("mathe", "Mathematik", "Wie viel ist 15% von 80?", [4]string{"12", "10", "15", "18"}),
	q("mathe", "Mathematik", "Was ist die Fläche eines Rechtecks mit den Seiten 8cm und 5cm?", [4]string{"40 cm²", "26 cm²", "13 cm²", "80 cm²"}),
	q("mathe", "Mathematik", "Welche Zahl ergibt 2³ × 2²?", [4]string{"32", "16", "64", "8"}),
	q("mathe", "Mathematik", "Was ist der Umfang eines Kreises mit Radius 7cm? (π ≈ 3,14)", [4]string{"43,96 cm", "153,86 cm", "21,98 cm", "49 cm"}),
	q("mathe", "Mathematik", "Wie lautet die Primfaktorzerlegung von 36?", [4]string{"2² × 3²", "2 × 3³", "2³ × 3", "6²"}),
	q("mathe", "Mathematik", "Was ist die Steigung einer Geraden durch die Punkte (2,3) und (6,11)?", [4]string{"2", "4", "0,5", "8"}),
	q("mathe", "Mathematik", "Welchen Wert hat x in der Gleichung: x² = 64?", [4]string{"±8", "8", "32", "4"}),
	q("mathe", "Mathematik", "Was ist der Median der Zahlenreihe: 3, 7, 9, 15, 21?", [4]string{"9", "11", "7", "15"}),
	q("mathe", "Mathematik", "Wie viele Diagonalen hat ein Sechseck?", [4]string{"9", "6", "12", "15"}),

	// Chemie
	q("chemie", "Chemie", "Was ist die chemische Formel für Wasser?", [4]string{"H₂O", "CO₂", "H₂O₂", "HO"}),
	q("chemie", "Chemie", "Wie viele Protonen hat ein Kohlenstoffatom?", [4]string{"6", "12", "8", "4"}),
	q("chemie", "Chemie", "Was ist der pH-Wert einer neutralen Lösung?", [4]string{"7", "0", "14", "10"}),
	q("chemie", "Chemie", "Welches Element hat das Symbol 'Au'?", [4]string{"Gold", "Silber", "Aluminium", "Argon"}),
	q("chemie", "Chemie", "Was entsteht bei der Reaktion von Natrium mit Wasser?", [4]string{"Natriumhydroxid und Wasserstoff", "Natriumoxid", "Natriumchlorid", "Nur Wasserstoff"}),
	q("chemie", "Chemie", "Wie viele Elektronen befinden sich in der äußersten Schale von Sauerstoff?", [4]string{"6", "8", "2", "4"}),
	q("chemie", "Chemie", "Was ist die Summenformel von Kochsalz?", [4]string{"NaCl", "KCl", "CaCl₂", "NaCl₂"}),
	q("chemie", "Chemie", "Welche Art von Bindung besteht zwischen H₂O-Molekülen?", [4]string{"Wasserstoffbrückenbindung", "Ionenbindung", "Metallbindung", "Kovalente Bindung"}),
	q("chemie", "Chemie", "Was ist ein Katalysator?", [4]string{"Stoff, der Reaktionen beschleunigt ohne verbraucht zu werden", "Stoff, der Reaktionen verlangsamt", "Endprodukt einer Reaktion", "Stoff, der sich vollständig auflöst"}),
	q("chemie", "Chemie", "Welche Masse hat ein Mol Kohlenstoff (C)?", [4]string{"12 g", "6 g", "24 g", "1 g"}),

	// Physik
	q("physik", "Physik", "Was ist die Einheit der Kraft im SI-System?", [4]string{"Newton (N)", "Joule (J)", "Watt (W)", "Pascal (Pa)"}),
	q("physik", "Physik", "Wie schnell breitet sich Licht im Vakuum aus?", [4]string{"300.000 km/s", "150.000 km/s", "500.000 km/s", "100.000 km/s"}),
	q("physik", "Physik", "Was besagt das erste Newtonsche Gesetz?", [4]string{"Ein Körper bleibt in Ruhe oder gleichförmiger Bewegung, wenn keine Kraft wirkt", "Kraft = Masse × Beschleunigung", "Actio = Reactio", "Energie bleibt erhalten"}),
	q("physik", "Physik", "Was ist die Formel für die kinetische Energie?", [4]string{"E = ½mv²", "E = mgh", "E = mc²", "E = Pt"}),
	q("physik", "Physik", "Wie groß ist die Erdbeschleunigung?", [4]string{"9,81 m/s²", "10 m/s²", "8 m/s²", "12 m/s²"}),
	q("physik", "Physik", "Was ist ein Frequenz von 1 Hertz?", [4]string{"1 Schwingung pro Sekunde", "1 Meter pro Sekunde", "1 Welle pro Minute", "1 Umdrehung pro Minute"}),
	q("physik", "Physik", "Welches Gesetz beschreibt den Zusammenhang zwischen Strom, Spannung und Widerstand?", [4]string{"Ohmsches Gesetz", "Coulombsches Gesetz", "Kirchhoffsches Gesetz", "Faradaysches Gesetz"}),
	q("physik", "Physik", "Was passiert mit der Wellenlänge, wenn die Frequenz verdoppelt wird?", [4]string{"Sie halbiert sich", "Sie verdoppelt sich", "Sie bleibt gleich", "Sie vervierfacht sich"}),
	q("physik", "Physik", "Was ist die Einheit der elektrischen Ladung?", [4]string{"Coulomb (C)", "Ampere (A)", "Volt (V)", "Ohm (Ω)"}),
	q("physik", "Physik", "Welcher Aggregatzustand hat das höchste Volumen bei gleicher Masse?", [4]string{"Gas", "Flüssigkeit", "Feststoff", "Alle gleich"}),
}
