package seo

import "regexp"

// Each detector gets its own named table so the tables can be tested
// independently of the scoring arithmetic around them.

// greetingOpeners are templated openings that waste the first paragraph.
// Matched as prefixes of the trimmed first paragraph.
var greetingOpeners = []string{
	"안녕하세요",
	"안녕하십니까",
	"안녕하세용",
	"반갑습니다",
	"반가워요",
	"방문해주셔서",
	"방문해 주셔서",
	"찾아주셔서",
	"오늘은",
	"오늘도",
	"하이",
	"헬로",
	"여러분",
	"구독자",
	"이웃님",
	"블로그에 오신",
	"환영합니다",
	"포스팅을 시작",
	"글을 시작",
	"시작해볼게요",
	"시작하겠습니다",
	"소개해드릴게요",
}

// reNumberUnit matches concrete quantities: counts, currency, distances,
// weights, ratios and times with Korean or metric units.
var reNumberUnit = regexp.MustCompile(`\d+(?:[.,]\d+)?\s*(?:원|만원|천원|억|개|명|인분|년|개월|주|일|시간|분|초|회|번|곳|군데|층|잔|마리|권|병|채|위|점|평|%|㎡|km|m|cm|mm|kg|g|ml|L|l|kcal)|\d+\s*:\s*\d+|₩\s*\d`)

// conclusionWords signal that the opening already tells the reader what
// they came for.
var conclusionWords = []string{
	"결과", "결론", "요약", "정리", "비교", "추천", "핵심", "중요",
	"필요", "가격", "비용", "위치", "시간", "방법", "후기", "꿀팁",
	"장점", "단점", "총정리", "솔직",
}

// tocKeywords mark an explicit table of contents.
var tocKeywords = []string{"목차", "차례", "순서", "Contents", "CONTENTS", "INDEX"}

// reCircledNumeral matches the circled numerals bloggers use for lists.
var reCircledNumeral = regexp.MustCompile(`[①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮]`)

// reNumberedLine matches a "1." style list line.
var reNumberedLine = regexp.MustCompile(`(?m)^\s*\d+\.`)

// reQnA matches Q&A / FAQ sections.
var reQnA = regexp.MustCompile(`(?im)Q\s*&\s*A|FAQ|질문과\s*답변|자주\s*묻는\s*질문|^Q\s*[.:]|^A\s*[.:]`)

// FIRE detector tables. Each matching content adds 5 points.

// reFireFact: numeric quantities, currency, ratings, metric units.
var reFireFact = regexp.MustCompile(`\d+(?:[.,]\d+)?\s*(?:원|만원|천원|억|kg|g|km|m|cm|ml|L|l|평|㎡|kcal|%|개월|시간|분|회|개|명|인분)|평점\s*\d|별점|[0-9.]+\s*점`)

// fireInterpretWords: causal and comparative connectives.
var fireInterpretWords = []string{
	"때문에", "그래서", "따라서", "덕분에", "왜냐하면", "결국",
	"반면", "비해", "비교하면", "비교해보면", "차이", "효과",
	"장점", "단점",
}

// reFireReal: first-hand experience verbs and duration-of-use phrases.
var reFireReal = regexp.MustCompile(`직접|실제로|다녀왔|방문했|방문해봤|사용해봤|써봤|먹어봤|입어봤|타봤|구매했|구입했|예약했|등록했|신청했|\d+\s*(?:개월|주|년)\s*(?:째|동안|간)`)

// fireEmotionWords: subjective outcome language.
var fireEmotionWords = []string{
	"느꼈", "느낌", "만족", "추천", "아쉬", "좋았", "행복",
	"솔직히", "감동", "후회", "기대", "놀랐",
}

// reGenericPraise catches praise with no substance behind it.
var reGenericPraise = regexp.MustCompile(`좋아요|좋네요|추천해요|추천합니다|괜찮아요|괜찮네요|맛있어요|맛있네요|최고예요|최고입니다`)

// reTitleNumber matches concrete numbers in titles: counts, currency,
// weights, distances, "N가지/곳/선" list markers.
var reTitleNumber = regexp.MustCompile(`\d+\s*(?:가지|곳|개|선|군데|만원|천원|원|억|kg|g|km|m|%|분|시간|일|주|개월|년|위|층|인분|박|줄)|[-+]?\d+(?:[.,]\d+)?\s*(?:kg|kcal|㎡|평)`)

// Credibility detector tables.

// reSourceMarker matches explicit source or reference marks and links.
var reSourceMarker = regexp.MustCompile(`https?://\S+|(?:출처|참고|참조)\s*[:：]`)

// reCredData matches verifiable data claims: years in business, member or
// customer counts, ratings, floor area.
var reCredData = regexp.MustCompile(`\d+\s*년\s*(?:경력|운영|전통|차)|(?:회원|고객|수강생|방문객)\s*\d+|\d+\s*(?:명|분)\s*(?:이상\s*)?(?:방문|이용|수강|등록)|평점\s*[0-9.]+|별점\s*[0-9.]+|\d+\s*(?:평|㎡)`)

// reCredential matches certifications, titles and experience claims.
var reCredential = regexp.MustCompile(`자격증|수료|전문가|공인|인증|경력\s*\d+\s*년|\d+\s*년\s*차|트레이너|코치|원장|대표|강사|약사|의사|영양사|상담사`)

// hedgingPhrases undermine credibility when overused and drive the
// hedging penalty.
var hedgingPhrases = []string{
	"것 같아요", "것 같습니다", "것 같은데", "일 수도", "아마도",
	"글쎄요", "모르겠",
}

// penaltyHedgingPhrases is the narrower set counted for the repetition
// penalty pass.
var penaltyHedgingPhrases = []string{"것 같아요", "것 같습니다", "것 같은데"}

// reKoreanToken matches runs of two or more Hangul syllables, the unit
// used for keyword-stuffing detection.
var reKoreanToken = regexp.MustCompile(`[가-힣]{2,}`)
