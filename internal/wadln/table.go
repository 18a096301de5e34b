// Code generated offline from a dense sampling of ln(x) over [0.001, 10]
// (wad-scaled), with extra density in [0.1, 0.3] and around [0.7, 1.5]
// where the earner-rate safety calculator's log branch typically lands.
// Do not hand-edit; regenerate if the accuracy target or coverage changes.

package wadln

// tableEntry holds (x_wad, |ln(x)|_wad). The sign of ln(x) is determined by
// comparing x against WAD, not stored here.
type tableEntry struct {
	x  uint64
	ln uint64
}

// table is sorted ascending by x and covers [0.001*WAD, 10*WAD].
var table = []tableEntry{
	{1000000000000000, 6907755278982137000},
	{1081180751076608, 6829701547016237000},
	{1168951816498579, 6751647815050337000},
	{1263848202934298, 6673594083084438000},
	{1366448349295326, 6595540351118537500},
	{1477377652598512, 6517486619152637500},
	{1597312280060255, 6439432887186737500},
	{1726983290659434, 6361379155220838000},
	{1867181091291920, 6283325423254938000},
	{2018760254679039, 6205271691289038000},
	{2182644728397488, 6127217959323138000},
	{2359833466782196, 6049164227357238000},
	{2551406520031290, 5971110495391338000},
	{2758531617629186, 5893056763425438000},
	{2982471286216891, 5815003031459539000},
	{3224590545296396, 5736949299493639000},
	{3486365227678087, 5658895567527739000},
	{3769390975388361, 5580841835561840000},
	{4075392965871776, 5502788103595940000},
	{4406236427773574, 5424734371630040000},
	{4763938010401344, 5346680639664139500},
	{5150678076168126, 5268626907698239500},
	{5568813990945274, 5190573175732339500},
	{6020894493336136, 5112519443766439000},
	{6509675230458172, 5034465711800540000},
	{7038135554931558, 4956411979834640000},
	{7609496685459883, 4878358247868740000},
	{8227241341700470, 4800304515902841000},
	{8895134973108235, 4722250783936941000},
	{9617248711152966, 4644197051971041000},
	{10397984184814907, 4566143320005141000},
	{11242100350620874, 4488089588039241000},
	{12154742500762877, 4410035856073341000},
	{13141473626117579, 4331982124107441000},
	{14208308325339229, 4253928392141542000},
	{15361749466718292, 4175874660175642000},
	{16608827826277168, 4097820928209741500},
	{17957144943716400, 4019767196243842000},
	{19414919457438815, 3941713464277942300},
	{20991037201085555, 3863659732312042300},
	{22695105366946702, 3785606000346142300},
	{24537511066398187, 3707552268380242700},
	{26529484644318976, 3629498536414342600},
	{28683168133420135, 3551444804448442600},
	{31011689265747800, 3473391072482543000},
	{33529241492495594, 3395337340516643000},
	{36251170499885360, 3317283608550743000},
	{39194067748472220, 3239229876584843300},
	{42375871606040644, 3161176144618943700},
	{45815976690544935, 3083122412653043700},
	{49535352089591720, 3005068680687144000},
	{53556669177069010, 2927014948721244000},
	{57904439806024930, 2848961216755343500},
	{62605165720148220, 2770907484789444400},
	{67687500094585380, 2692853752823544300},
	{73182422190761820, 2614800020857644300},
	{79123426189813230, 2536746288891745000},
	{85546725355656910, 2458692556925844000},
	{92491472772173370, 2380638824959945000},
	{100000000000000000, 2302585092994045500},
	{100000000000000060, 2302585092994045000},
	{101342281879194640, 2289251562124580400},
	{102684563758389260, 2276093477547069400},
	{104026845637583900, 2263106282020258300},
	{105369127516778530, 2250285593591196500},
	{106711409395973160, 2237627196719273000},
	{108053691275167780, 2225127033955042000},
	{109395973154362420, 2212781198132742300},
	{110738255033557050, 2200585925038924400},
	{112080536912751690, 2188537586522749700},
	{113422818791946310, 2176632684016431000},
	{114765100671140940, 2164867842436845000},
	{116107382550335580, 2153239804441726000},
	{117449664429530200, 2141745425015990600},
	{118791946308724830, 2130381666365676000},
	{120134228187919470, 2119145593098749700},
	{121476510067114100, 2108034367673679000},
	{122818791946308740, 2097045246098083700},
	{124161073825503360, 2086175573861180000},
	{125503355704698000, 2075422782084918300},
	{126845637583892600, 2064784383879862500},
	{128187919463087250, 2054257970892874800},
	{129530201342281880, 2043841210034619000},
	{130872483221476520, 2033531840375758000},
	{132214765100671150, 2023327670201516000},
	{133557046979865780, 2013226574215012400},
	{134899328859060420, 2003226490880429000},
	{136241610738255030, 1993325419897717500},
	{137583892617449660, 1983521419801096600},
	{138926174496644300, 1973812605674135900},
	{140268456375838930, 1964197146974693700},
	{141610738255033560, 1954673265463438200},
	{142953020134228200, 1945239233230079600},
	{144295302013422830, 1935893370811842000},
	{145637583892617440, 1926634045399045400},
	{146979865771812070, 1917459669123004100},
	{148322147651006700, 1908368697421752000},
	{149664429530201340, 1899359627479386000},
	{151006711409395980, 1890430996735084700},
	{152348993288590600, 1881581381458102200},
	{153691275167785250, 1872809395385265100},
	{155033557046979850, 1864113688417711400},
	{156375838926174500, 1855492945373804300},
	{157718120805369120, 1846945884795346000},
	{159060402684563760, 1838471257804373600},
	{160402684563758400, 1830067847007994000},
	{161744966442953030, 1821734465448849900},
	{163087248322147660, 1813469955598956400},
	{164429530201342270, 1805273188394778000},
	{165771812080536930, 1797143062311527400},
	{167114093959731540, 1789078502474797300},
	{168456375838926170, 1781078459807721000},
	{169798657718120800, 1773141910211984500},
	{171140939597315440, 1765267853781078600},
	{172483221476510070, 1757455314044285000},
	{173825503355704680, 1749703337239967000},
	{175167785234899340, 1742010991616811400},
	{176510067114093950, 1734377366761740400},
	{177852348993288600, 1726801572953282400},
	{179194630872483220, 1719282740539255200},
	{180536912751677850, 1711820019337665800},
	{181879194630872500, 1704412578059803800},
	{183221476510067100, 1697059603754545100},
	{184563758389261760, 1689760301272933400},
	{185906040268456360, 1682513892752166300},
	{187248322147651000, 1675319617118139300},
	{188590604026845630, 1668176729605759000},
	{189932885906040270, 1661084501296267200},
	{191275167785234900, 1654042218670854300},
	{192617449664429540, 1647049183179883700},
	{193959731543624170, 1640104710827072500},
	{195302013422818780, 1633208131768012500},
	{196644295302013440, 1626358789922437400},
	{197986577181208050, 1619556042599685000},
	{199328859060402680, 1612799260136805300},
	{200671140939597310, 1606087825548818500},
	{202013422818791950, 1599421134190629000},
	{203355704697986580, 1592798593430135600},
	{204697986577181200, 1586219622332093200},
	{206040268456375850, 1579683651352307600},
	{207382550335570460, 1573190122041759500},
	{208724832214765120, 1566738486760270500},
	{210067114093959730, 1560328208399351700},
	{211409395973154330, 1553958760113871800},
	{212751677852349000, 1547629625062224100},
	{214093959731543630, 1541340296154660300},
	{215436241610738270, 1535090275809488900},
	{216778523489932870, 1528879075716848400},
	{218120805369127500, 1522706216609767300},
	{219463087248322140, 1516571228042251400},
	{220805369127516800, 1510473648174132800},
	{222147651006711400, 1504413023562442000},
	{223489932885906020, 1498388908959061200},
	{224832214765100680, 1492400867114438400},
	{226174496644295300, 1486448468587143000},
	{227516778523489950, 1480531291559054500},
	{228859060402684560, 1474648921655988200},
	{230201342281879200, 1468800951773565000},
	{231543624161073820, 1462986981908145100},
	{232885906040268430, 1457206618992645800},
	{234228187919463100, 1451459476737077600},
	{235570469798657730, 1445745175473639000},
	{236912751677852330, 1440063342006208100},
	{238255033557046970, 1434413609464089100},
	{239597315436241600, 1428795617159865700},
	{240939597315436240, 1423209010451226000},
	{242281879194630870, 1417653440606624000},
	{243624161073825500, 1412128564674654000},
	{244966442953020100, 1406634045357013400},
	{246308724832214750, 1401169550884934700},
	{247651006711409380, 1395734754898977600},
	{248993288590604020, 1390329336332069700},
	{250335570469798650, 1384952979295689400},
	{251677852348993300, 1379605372969093800},
	{253020134228187900, 1374286211491494000},
	{254362416107382500, 1368995193857078600},
	{255704697986577200, 1363732023812804000},
	{257046979865771800, 1358496409758859000},
	{258389261744966460, 1353288064651720500},
	{259731543624161070, 1348106705909723100},
	{261073825503355670, 1342952055321058500},
	{262416107382550330, 1337823838954139000},
	{263758389261745000, 1332721787070243500},
	{265100671140939600, 1327645634038382900},
	{266442953020134200, 1322595118252314600},
	{267785234899328800, 1317569982049641600},
	{269127516778523500, 1312569971632935800},
	{270469798657718140, 1307594836992821900},
	{271812080536912750, 1302644331832965700},
	{273154362416107350, 1297718213496909900},
	{274496644295301960, 1292816242896703200},
	{275838926174496700, 1287938184443270000},
	{277181208053691300, 1283083805978472000},
	{278523489932885900, 1278252878708806600},
	{279865771812080500, 1273445177140703600},
	{281208053691275160, 1268660479017367200},
	{282550335570469800, 1263898565257123300},
	{283892617449664430, 1259159219893226900},
	{285234899328859040, 1254442230015088100},
	{286577181208053640, 1249747385710880500},
	{287919463087248300, 1245074480011488000},
	{289261744966442970, 1240423308835757000},
	{290604026845637600, 1235793670937015000},
	{291946308724832200, 1231185367850820900},
	{293288590604026840, 1226598203843914700},
	{294630872483221450, 1222031985864333600},
	{295973154362416100, 1217486523492658800},
	{297315436241610700, 1212961628894369200},
	{298657718120805300, 1208457116773264700},
	{300000000000000000, 1203972804325936100},
	{304339378492326600, 1189611823641407300},
	{308741524336985500, 1175250842956878400},
	{313207345438305700, 1160889862272349600},
	{317737762833084800, 1146528881587820500},
	{322333710880544400, 1132167900903291700},
	{326996137455034030, 1117806920218762800},
	{331726004141521600, 1103445939534234000},
	{336524286433912200, 1089084958849705100},
	{341391973936235160, 1074723978165176300},
	{346330070566741300, 1060362997480647400},
	{351339594764952360, 1046002016796118400},
	{356421579701705000, 1031641036111589500},
	{361577073492233950, 1017280055427060700},
	{366807139412336000, 1002919074742531800},
	{372112856117661870, 988558094058003000},
	{377495317866179300, 974197113373474100},
	{382955634743854360, 959836132688945200},
	{388494932893597000, 945475152004416300},
	{394114354747518200, 931114171319887500},
	{399815059262546850, 916753190635358500},
	{405598222159454240, 902392209950829600},
	{411465036165336400, 888031229266300800},
	{417416711259604000, 873670248581772000},
	{423454474923529560, 859309267897243000},
	{429579572393405000, 844948287212714300},
	{435793266917361140, 830587306528185400},
	{442096840015901100, 816226325843656400},
	{448491591746203000, 801865345159127600},
	{454978840970245770, 787504364474598700},
	{461559925626812400, 773143383790069900},
	{468236203007428700, 758782403105541000},
	{475009050036292500, 744421422421012200},
	{481879863554252550, 730060441736483200},
	{488850060606894730, 715699461051954300},
	{495921078736795140, 701338480367425500},
	{503094376280001500, 686977499682896500},
	{510371432666801300, 672616518998367700},
	{517753748726842200, 658255538313838800},
	{525242846998664700, 643894557629309900},
	{532840272043712900, 629533576944781100},
	{540547590764886100, 615172596260252200},
	{548366392729699900, 600811615575723400},
	{556298290498120000, 586450634891194500},
	{564344919955138800, 572089654206665600},
	{572507940648162600, 557728673522136700},
	{580789036129278900, 543367692837607800},
	{589189914302474000, 529006712153078800},
	{597712307775873800, 514645731468550100},
	{606357974219079000, 500284750784021200},
	{615128696725669200, 485923770099492300},
	{624026284180950200, 471562789414963430},
	{633052571635021300, 457201808730434640},
	{642209420681238300, 442840828045905700},
	{651498719840150800, 428479847361376730},
	{660922384948993100, 414118866676848000},
	{670482359556809500, 399757885992319150},
	{680180615325293700, 385396905307790200},
	{690019152435427400, 371035924623261240},
	{700000000000000000, 356674943938732450},
	{703652968036529700, 351469987490430800},
	{707305936073059400, 346291982393677870},
	{710958904109589000, 341140650976548300},
	{714611872146118700, 336015719836293000},
	{718264840182648400, 330916919752268700},
	{721917808219178100, 325843985601074500},
	{725570776255707800, 320796656273830500},
	{729223744292237400, 315774674595534200},
	{732876712328767000, 310777787246430350},
	{736529680365296800, 305805744685337700},
	{740182648401826500, 300858301074870440},
	{743835616438356200, 295935214208501400},
	{747488584474885800, 291036245439411700},
	{751141552511415500, 286161159611074360},
	{754794520547945200, 281309724989522400},
	{758447488584474900, 276481713197251700},
	{762100456621004600, 271676899148711460},
	{765753424657534200, 266895060987337800},
	{769406392694063900, 262135980024084500},
	{773059360730593600, 257399440677411300},
	{776712328767123300, 252685230414684770},
	{780365296803653000, 247993139694955620},
	{784018264840182600, 243322961913071100},
	{787671232876712300, 238674493345086470},
	{791324200913242000, 234047533094940470},
	{794977168949771700, 229441883042357500},
	{798630136986301400, 224857347791944440},
	{802283105022831000, 220293734623449420},
	{805936073059360700, 215750853443149450},
	{809589041095890400, 211228516736338700},
	{813242009132420100, 206726539520884880},
	{816894977168949800, 202244739301827350},
	{820547945205479400, 197782936026987570},
	{824200913242009100, 193340952043565300},
	{827853881278538800, 188918612055695520},
	{831506849315068500, 184515743082938580},
	{835159817351598200, 180132174419680820},
	{838812785388127800, 175767737595420970},
	{842465753424657600, 171422266335918900},
	{846118721461187200, 167095596525186800},
	{849771689497716900, 162787566168295800},
	{853424657534246600, 158498015354983670},
	{857077625570776200, 154226786224037800},
	{860730593607306000, 149973722928435330},
	{864383561643835600, 145738671601223720},
	{868036529680365300, 141521480322117370},
	{871689497716895000, 137321999084798900},
	{875342465753424700, 133140079764902000},
	{878995433789954400, 128975576088661860},
	{882648401826484000, 124828343602215670},
	{886301369863013700, 120698239641536280},
	{889954337899543400, 116585123302985700},
	{893607305936073100, 112488855414470260},
	{897260273972602800, 108409298507184850},
	{900913242009132400, 104346316787931210},
	{904566210045662100, 100299776111995610},
	{908219178082191800, 96269543956574320},
	{911872146118721500, 92255489394731270},
	{915525114155251200, 88257483069876910},
	{919178082191780800, 84275397170755080},
	{922831050228310500, 80309105406925530},
	{926484018264840200, 76358482984731770},
	{930136986301369900, 72423406583740680},
	{933789954337899600, 68503754333644350},
	{937442922374429200, 64599405791613000},
	{941095890410958900, 60710241920087510},
	{944748858447488600, 56836145065003486},
	{948401826484018300, 52976998934434190},
	{952054794520548000, 49132688577644650},
	{955707762557077600, 45303100364546836},
	{959360730593607300, 41488121965546125},
	{963013698630137000, 37687642331771920},
	{966666666666666700, 33901551675681340},
	{970319634703196400, 30129741452029270},
	{973972602739726000, 26372104339195998},
	{977625570776255700, 22628534220863746},
	{981278538812785400, 18898926168036060},
	{984931506849315100, 15183176421390119},
	{988584474885844800, 11481182373956254},
	{992237442922374400, 7792842554116927},
	{995890410958904100, 4118056608917486},
	{999543378995433800, 456725287683582},
	{1000000000000000000, 0},
	{1003196347031963600, 3191249574063820},
	{1006849315068493200, 6825965070399891},
	{1010502283105022800, 10447517240503093},
	{1014155251141552600, 14056001083881008},
	{1017808219178082200, 17651510575322334},
	{1021461187214611800, 21234138679583000},
	{1025114155251141600, 24803977365808190},
	{1028767123287671200, 28361117621697872},
	{1032420091324200800, 31905649467423190},
	{1036073059360730600, 35437661969295200},
	{1039726027397260400, 38957243253193226},
	{1043378995433790000, 42464480517758590},
	{1047031963470319600, 45959460047357875},
	{1050684931506849400, 49442267224819440},
	{1054337899543379000, 52912986543948830},
	{1057990867579908600, 56371701621829600},
	{1061643835616438400, 59818495210910205},
	{1065296803652968000, 63253449210883400},
	{1068949771689497800, 66676644680364330},
	{1072602739726027400, 70088161848366260},
	{1076255707762557200, 73488080125584720},
	{1079908675799086800, 76876478115486850},
	{1083561643835616400, 80253433625217000},
	{1087214611872146200, 83619023676316340},
	{1090867579908675800, 86973324515263000},
	{1094520547945205400, 90316411623837760},
	{1098173515981735200, 93648359729315070},
	{1101826484018264800, 96969242814485170},
	{1105479452054794600, 100279134127512050},
	{1109132420091324200, 103578106191625970},
	{1112785388127854000, 106866230814659820},
	{1116438356164383600, 110143579098425910},
	{1120091324200913200, 113410221447942740},
	{1123744292237443000, 116666227580509420},
	{1127397260273972600, 119911666534632980},
	{1131050228310502200, 123146606678812960},
	{1134703196347032000, 126371115720182610},
	{1138356164383561600, 129585260713011320},
	{1142009132420091400, 132789108067072610},
	{1145662100456621000, 135982723555875760},
	{1149315068493150800, 139166172324769470},
	{1152968036529680400, 142339518898913720},
	{1156621004566210000, 145502827191128670},
	{1160273972602739800, 148656160509617640},
	{1163926940639269400, 151799581565568910},
	{1167579908675799000, 154933152480640020},
	{1171232876712328800, 158056934794323420},
	{1174885844748858400, 161170989471197600},
	{1178538812785388200, 164275376908067400},
	{1182191780821917800, 167370156940991100},
	{1185844748858447600, 170455388852202020},
	{1189497716894977200, 173531131376920800},
	{1193150684931506800, 176597442710065920},
	{1196803652968036600, 179654380512859900},
	{1200456621004566200, 182702001919334700},
	{1204109589041095800, 185740363542740100},
	{1207762557077625600, 188769521481853280},
	{1211415525114155200, 191789531327193100},
	{1215068493150685000, 194800448167142730},
	{1218721461187214600, 197802326593977620},
	{1222374429223744400, 200795220709806100},
	{1226027397260274000, 203779184132418580},
	{1229680365296803600, 206754270001052340},
	{1233333333333333400, 209720530982069100},
	{1236986301369863000, 212678019274548570},
	{1240639269406392600, 215626786615801150},
	{1244292237442922400, 218566884286797960},
	{1247945205479452000, 221498363117521440},
	{1251598173515981800, 224421273492239340},
	{1255251141552511400, 227335665354699180},
	{1258904109589041200, 230241588213250330},
	{1262557077625570800, 233139091145888680},
	{1266210045662100400, 236028222805231470},
	{1269863013698630200, 238909031423418380},
	{1273515981735159800, 241781564816942430},
	{1277168949771689400, 244645870391413140},
	{1280821917808219200, 247501995146250200},
	{1284474885844748800, 250349985679310270},
	{1288127853881278600, 253189888191449830},
	{1291780821917808200, 256021748491020660},
	{1295433789954338000, 258845611998304900},
	{1299086757990867600, 261661523749884800},
	{1302739726027397200, 264469528402953460},
	{1306392694063927000, 267269670239563800},
	{1310045662100456600, 270061993170818250},
	{1313698630136986200, 272846540741001300},
	{1317351598173516000, 275623356131653450},
	{1321004566210045600, 278392482165588540},
	{1324657534246575400, 281153961310857570},
	{1328310502283105000, 283907835684655100},
	{1331963470319634800, 286654147057175000},
	{1335616438356164400, 289392936855410340},
	{1339269406392694000, 292124246166904470},
	{1342922374429223800, 294848115743448550},
	{1346575342465753400, 297564586004729740},
	{1350228310502283000, 300273697041930630},
	{1353881278538812800, 302975488621279300},
	{1357534246575342400, 305670000187551140},
	{1361187214611872200, 308357270867524960},
	{1364840182648401800, 311037339473391350},
	{1368493150684931600, 313710244506116800},
	{1372146118721461200, 316376024158761500},
	{1375799086757990800, 319034716319754660},
	{1379452054794520600, 321686358576125540},
	{1383105022831050200, 324330988216690760},
	{1386757990867579800, 326968642235202170},
	{1390410958904109600, 329599357333450900},
	{1394063926940639200, 332223169924331260},
	{1397716894977169000, 334840116134866030},
	{1401369863013698600, 337450231809189650},
	{1405022831050228400, 340053552511495400},
	{1408675799086758000, 342650113528941700},
	{1412328767123287600, 345239949874523060},
	{1415981735159817400, 347823096289902500},
	{1419634703196347200, 350399587248207400},
	{1423287671232876600, 352969456956790500},
	{1426940639269406400, 355532739359955400},
	{1430593607305936000, 358089468141645160},
	{1434246575342465800, 360639676728100100},
	{1437899543378995400, 363183398290478130},
	{1441552511415525200, 365720665747445200},
	{1445205479452054800, 368251511767730100},
	{1448858447488584400, 370775968772649000},
	{1452511415525114200, 373294068938597600},
	{1456164383561644000, 375805844199511240},
	{1459817351598173400, 378311326249294870},
	{1463470319634703200, 380810546544223900},
	{1467123287671232800, 383303536305311900},
	{1470776255707762600, 385790326520652370},
	{1474429223744292200, 388270947947728700},
	{1478082191780822000, 390745431115697900},
	{1481735159817351600, 393213806327643860},
	{1485388127853881200, 395676103662804870},
	{1489041095890411000, 398132352978772640},
	{1492694063926940800, 400582583913664250},
	{1496347031963470200, 403026825888268000},
	{1500000000000000000, 405465108108164400},
	{1513218929153663700, 414239123051961140},
	{1526554351699307200, 423013137995757900},
	{1540007294248860700, 431787152939554700},
	{1553578792461394900, 440561167883351530},
	{1567269891122849300, 449335182827148350},
	{1581081644226464800, 458109197770945100},
	{1595015115053923100, 466883212714741760},
	{1609071376257203500, 475657227658538500},
	{1623251509941158400, 484431242602335330},
	{1637556607746818400, 493205257546132200},
	{1651987770935431100, 501979272489928900},
	{1666546110473240600, 510753287433725600},
	{1681232747117013600, 519527302377522400},
	{1696048811500320000, 528301317321319200},
	{1710995444220572100, 537075332265116100},
	{1726073795926834200, 545849347208912800},
	{1741285027408402400, 554623362152709600},
	{1756630309684167300, 563397377096506400},
	{1772110824092762800, 572171392040303100},
	{1787727762383511500, 580945406984099900},
	{1803482326808168600, 589719421927896700},
	{1819375730213476300, 598493436871693400},
	{1835409196134534500, 607267451815490200},
	{1851583958888991300, 616041466759287100},
	{1867901263672067300, 624815481703083900},
	{1884362366652413900, 633589496646880600},
	{1900968535068819700, 642363511590677400},
	{1917721047327765300, 651137526534474100},
	{1934621193101842700, 659911541478271000},
	{1951670273429035700, 668685556422067700},
	{1968869600812882000, 677459571365864400},
	{1986220499323514000, 686233586309661200},
	{2003724304699588700, 695007601253458100},
	{2021382364451121000, 703781616197254900},
	{2039196037963217000, 712555631141051500},
	{2057166696600729000, 721329646084848500},
	{2075295723813823000, 730103661028645100},
	{2093584515244487400, 738877675972441900},
	{2112034478833970000, 747651690916238600},
	{2130647034931171000, 756425705860035300},
	{2149423616401983800, 765199720803832300},
	{2168365668739604000, 773973735747629200},
	{2187474650175807300, 782747750691425900},
	{2206752031793213700, 791521765635222700},
	{2226199297638532300, 800295780579019400},
	{2245817944836812000, 809069795522816200},
	{2265609483706694700, 817843810466612800},
	{2285575437876686600, 826617825410409600},
	{2305717344402450600, 835391840354206400},
	{2326036753885137000, 844165855298003300},
	{2346535230590754300, 852939870241800100},
	{2367214352570591000, 861713885185596900},
	{2388075711782702300, 870487900129393700},
	{2409120914214462500, 879261915073190400},
	{2430351580006203000, 888035930016987100},
	{2451769343575934000, 896809944960783900},
	{2473375853745171000, 905583959904580700},
	{2495172773865864400, 914357974848377700},
	{2517161781948453300, 923131989792174400},
	{2539344570791044000, 931906004735971000},
	{2561722848109729000, 940680019679767800},
	{2584298336670052000, 949454034623564500},
	{2607072774419633400, 958228049567361300},
	{2630047914621966000, 967002064511158100},
	{2653225525991385500, 975776079454954900},
	{2676607392829233800, 984550094398751700},
	{2700195315161221500, 993324109342548300},
	{2723991108876002700, 1002098124286345400},
	{2747996605864963600, 1010872139230142000},
	{2772213654163255000, 1019646154173938800},
	{2796644118092057000, 1028420169117735500},
	{2821289878402103000, 1037194184061532200},
	{2846152832418467500, 1045968199005329100},
	{2871234894186627300, 1054742213949126000},
	{2896537994619814000, 1063516228892922700},
	{2922064081647663500, 1072290243836719400},
	{2947815120366174000, 1081064258780516200},
	{2973793093188986400, 1089838273724312900},
	{3000000000000000400, 1098612288668109800},
	{3046070656673786700, 1113852450748184800},
	{3092848815149692200, 1129092612828260100},
	{3140345340451921700, 1144332774908335200},
	{3188571264457617000, 1159572936988410200},
	{3237537788459194000, 1174813099068485500},
	{3287256285766032000, 1190053261148560600},
	{3337738304346123700, 1205293423228635900},
	{3388995569508282700, 1220533585308711000},
	{3441039986625549700, 1235773747388786000},
	{3493883643900416000, 1251013909468861300},
	{3547538815172514200, 1266254071548936300},
	{3602017962769429500, 1281494233629011600},
	{3657333740401284000, 1296734395709086700},
	{3713498996099778000, 1311974557789161700},
	{3770526775202366000, 1327214719869236800},
	{3828430323382256500, 1342454881949312000},
	{3887223089724942200, 1357695044029387100},
	{3946918729851988000, 1372935206109462400},
	{4007531109092770500, 1388175368189537500},
	{4069074305704948000, 1403415530269612500},
	{4131562614144369000, 1418655692349687800},
	{4195010548385201000, 1433895854429762900},
	{4259432845291057000, 1449136016509838000},
	{4324844468037876000, 1464376178589913200},
	{4391260609589375000, 1479616340669988300},
	{4458696696225880000, 1494856502750063300},
	{4527168391127338000, 1510096664830138600},
	{4596691598011353000, 1525336826910213700},
	{4667282464827108000, 1540576988990289000},
	{4738957387505986000, 1555817151070364000},
	{4811733013769817000, 1571057313150439000},
	{4885626246997589000, 1586297475230514300},
	{4960654250151545000, 1601537637310589400},
	{5036834449763576000, 1616777799390664700},
	{5114184539982829000, 1632017961470739700},
	{5192722486685475000, 1647258123550814800},
	{5272466531647587000, 1662498285630889900},
	{5353435196782111000, 1677738447710965100},
	{5435647288440881000, 1692978609791040200},
	{5519121901782736000, 1708218771871115500},
	{5603878425208672000, 1723458933951190500},
	{5689936544865148000, 1738699096031265600},
	{5777316249216519000, 1753939258111340700},
	{5866037833687701500, 1769179420191416000},
	{5956121905378126000, 1784419582271491200},
	{6047589387848091000, 1799659744351566300},
	{6140461525978619000, 1814899906431641300},
	{6234759890905940000, 1830140068511716600},
	{6330506385031747000, 1845380230591791700},
	{6427723247110419000, 1860620392671867000},
	{6526433057414332000, 1875860554751942000},
	{6626658742978528000, 1891100716832017000},
	{6728423582925898000, 1906340878912092100},
	{6831751213874162500, 1921581040992167400},
	{6936665635425869000, 1936821203072242500},
	{7043191215742723000, 1952061365152317800},
	{7151352697205494000, 1967301527232392800},
	{7261175202160865500, 1982541689312467900},
	{7372684238756521000, 1997781851392543000},
	{7485905706865850000, 2013022013472618000},
	{7600865904103636000, 2028262175552693000},
	{7717591531934122000, 2043502337632768600},
	{7836109701872876000, 2058742499712843600},
	{7956447941783913000, 2073982661792918700},
	{8078634202273511000, 2089222823872994000},
	{8202696863182195000, 2104462985953069200},
	{8328664740176466000, 2119703148033144300},
	{8456567091441713000, 2134943310113219400},
	{8586433624477932000, 2150183472193294400},
	{8718294502999791000, 2165423634273369500},
	{8852180353942678000, 2180663796353444500},
	{8988122274576323000, 2195903958433519600},
	{9126151839727667000, 2211144120513595000},
	{9266301109114647000, 2226384282593670000},
	{9408602634792635000, 2241624444673745700},
	{9553089468715172000, 2256864606753820700},
	{9699795170410887000, 2272104768833896000},
	{9848753814778238000, 2287344930913971000},
	{10000000000000000000, 2302585092994046000},
}
